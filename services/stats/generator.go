package stats

import (
	"math/rand"
	"sort"

	"practice-cli/models"
	"practice-cli/utils"
)

// Generator draws uniform random integers for the sampling and guessing
// programs.
type Generator struct {
	rng     *rand.Rand
	maxSize int
}

// NewGenerator wraps rng. A nil rng uses a generator seeded from the
// runtime's auto-seeded global source. maxSize <= 0 disables the size cap.
func NewGenerator(rng *rand.Rand, maxSize int) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{rng: rng, maxSize: maxSize}
}

// Between returns a value uniform in [lo, hi). It returns lo when the range
// is empty.
func (g *Generator) Between(lo, hi int32) int32 {
	span := int64(hi) - int64(lo)
	if span <= 0 {
		return lo
	}
	return int32(int64(lo) + g.rng.Int63n(span))
}

// Inclusive returns a value uniform in [lo, hi].
func (g *Generator) Inclusive(lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + uint32(g.rng.Int63n(int64(hi)-int64(lo)+1))
}

// Sample draws a sample size uniform in [lo, hi), then that many values
// uniform in [lo, hi), and returns them sorted. Negative sizes yield an empty
// sample.
func (g *Generator) Sample(lo, hi int32) models.Sample {
	if hi <= lo {
		return models.Sample{}
	}

	n := int(g.Between(lo, hi))
	if n < 0 {
		n = 0
	}
	if g.maxSize > 0 && n > g.maxSize {
		utils.L().Warn("sample size %d exceeds limit, clamping to %d", n, g.maxSize)
		n = g.maxSize
	}

	s := make(models.Sample, n)
	for i := range s {
		s[i] = g.Between(lo, hi)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })

	utils.L().Debug("sample drawn  range=[%d,%d) size=%d", lo, hi, n)
	return s
}
