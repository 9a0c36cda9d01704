// Package sequence computes Fibonacci numbers.
package sequence

import "errors"

// MaxN is the largest index whose Fibonacci number fits in an int64.
const MaxN = 92

var (
	ErrNegative = errors.New("fibonacci index must not be negative")
	ErrOverflow = errors.New("fibonacci number does not fit in 64 bits")
)

// Fib returns fib(n) with fib(0)=0, fib(1)=1 and
// fib(n)=fib(n-1)+fib(n-2). Intermediate results are memoised, so the
// recurrence runs in linear time.
func Fib(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxN {
		return 0, ErrOverflow
	}
	memo := make(map[int64]int64, n+1)
	return fib(n, memo), nil
}

func fib(n int64, memo map[int64]int64) int64 {
	if n < 2 {
		return n
	}
	if v, ok := memo[n]; ok {
		return v
	}
	v := fib(n-1, memo) + fib(n-2, memo)
	memo[n] = v
	return v
}
