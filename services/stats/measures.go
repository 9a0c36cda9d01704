// Package stats computes central-tendency measures over integer samples and
// draws the random numbers the interactive programs need.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"practice-cli/models"
)

// ErrEmptySample is returned by measures that have no value for an empty
// sample.
var ErrEmptySample = errors.New("empty sample")

// Mean returns the arithmetic mean as a float32. The mean of an empty sample
// is defined as 0.
func Mean(s models.Sample) float32 {
	if len(s) == 0 {
		return 0
	}
	return float32(stat.Mean(s.Floats(), nil))
}

// Median returns the element at index floor(n/2) of the sorted sample. For
// even n this is the upper of the two middle elements.
func Median(s models.Sample) (int32, error) {
	if len(s) == 0 {
		return 0, ErrEmptySample
	}
	return s[len(s)/2], nil
}

// Mode returns the most frequent value. Ties go to the value that first
// reaches the maximum count in a left-to-right pass, which on a sorted sample
// is the smallest.
func Mode(s models.Sample) (int32, error) {
	if len(s) == 0 {
		return 0, ErrEmptySample
	}
	freq := make(models.FrequencyTable)
	mode, best := s[0], 0
	for _, v := range s {
		if c := freq.Add(v); c > best {
			mode, best = v, c
		}
	}
	return mode, nil
}

// Summary bundles the three measures of a non-empty sample.
type Summary struct {
	Mean   float32
	Median int32
	Mode   int32
}

// Summarize computes every measure at once.
func Summarize(s models.Sample) (Summary, error) {
	median, err := Median(s)
	if err != nil {
		return Summary{}, err
	}
	mode, err := Mode(s)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: Mean(s), Median: median, Mode: mode}, nil
}
