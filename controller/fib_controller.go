package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"practice-cli/services/sequence"
	"practice-cli/utils"
	"practice-cli/views"
)

// FibController runs nth_fib.
type FibController struct {
	console *views.Console
}

func NewFibController(console *views.Console) *FibController {
	return &FibController{console: console}
}

func (fc *FibController) Run(_ context.Context) error {
	line, err := fc.console.Prompt(views.FibPrompt)
	if err != nil && !errors.Is(err, utils.ErrEndOfInput) {
		return err
	}

	n, err := parseIndex(line)
	if err != nil {
		utils.L().Debug("index rejected: %v", err)
		fc.console.Println(views.FibNotANumber)
		return nil
	}

	v, err := sequence.Fib(n)
	if errors.Is(err, sequence.ErrOverflow) {
		fc.console.Println(views.FibOverflow(n))
		return nil
	}
	if err != nil {
		return err
	}
	fc.console.Println(views.FibResult(n, v))
	return nil
}

// parseIndex accepts non-negative 64-bit integers only.
func parseIndex(line string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, utils.ParseErrorf(line, "not an integer")
	}
	if n < 0 {
		return 0, utils.ParseErrorf(line, "negative index")
	}
	return n, nil
}
