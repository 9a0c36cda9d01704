package models

// Sample is a sequence of integer measures drawn from a half-open range.
// Generators return it sorted non-decreasing.
type Sample []int32

func (s Sample) String() string { return joinInts(s) }

// IsSorted reports whether s is non-decreasing.
func (s Sample) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// Contains reports whether v occurs in s.
func (s Sample) Contains(v int32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Floats converts s for numeric routines that work on float64.
func (s Sample) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// FrequencyTable counts occurrences per value. Missing values count zero.
type FrequencyTable map[int32]int

// Add increments the count for v and returns the new count.
func (t FrequencyTable) Add(v int32) int {
	t[v]++
	return t[v]
}

// Count returns how often v was added.
func (t FrequencyTable) Count(v int32) int {
	return t[v]
}
