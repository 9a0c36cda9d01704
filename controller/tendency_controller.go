package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"practice-cli/services/stats"
	"practice-cli/utils"
	"practice-cli/views"
)

// TendencyController runs central_tendency: it reads a range, draws a
// random sample from it and prints mean, mode and median.
type TendencyController struct {
	console *views.Console
	gen     *stats.Generator
}

func NewTendencyController(console *views.Console, gen *stats.Generator) *TendencyController {
	return &TendencyController{console: console, gen: gen}
}

func (tc *TendencyController) Run(_ context.Context) error {
	line, err := tc.console.Prompt(views.TendencyPrompt)
	if err != nil && !errors.Is(err, utils.ErrEndOfInput) {
		return err
	}

	lo, hi, err := parseRange(line)
	if err != nil {
		utils.L().Debug("range rejected: %v", err)
		tc.console.Println(views.InvalidRange)
		lo, hi = 0, 0
	}

	sample := tc.gen.Sample(lo, hi)
	tc.console.Println(views.Measures(sample))

	summary, err := stats.Summarize(sample)
	if errors.Is(err, stats.ErrEmptySample) {
		tc.console.Println(views.EmptySample)
		tc.console.Println(views.Mean(stats.Mean(sample)))
		return nil
	}
	if err != nil {
		return err
	}

	tc.console.Lines(
		views.Mean(summary.Mean),
		views.Mode(summary.Mode),
		views.Median(summary.Median),
	)
	return nil
}

// parseRange expects exactly two signed 32-bit integers with hi > lo.
func parseRange(line string) (lo, hi int32, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, utils.ParseErrorf(line, "expected two integers, got %d fields", len(fields))
	}
	a, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, utils.ParseErrorf(line, "start: %v", err)
	}
	b, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, utils.ParseErrorf(line, "end: %v", err)
	}
	if b <= a {
		return 0, 0, utils.ParseErrorf(line, "end must be greater than start")
	}
	return int32(a), int32(b), nil
}
