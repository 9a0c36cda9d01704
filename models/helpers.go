package models

import (
	"strconv"
	"strings"
)

// ─── shared formatting helpers (package-private) ────────────────────────

func itoa32(v int32) string  { return strconv.FormatInt(int64(v), 10) }
func utoa64(v uint64) string { return strconv.FormatUint(v, 10) }

// ftoa renders the shortest representation that round-trips, so whole
// numbers print without a fractional part ("32", "212", "-17.5").
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFloat32 is ftoa for single-precision values such as the sample mean.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// joinInts renders values as "[a, b, c]".
func joinInts(vs []int32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(itoa32(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
