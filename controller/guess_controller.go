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

// GuessController runs the number-guessing loop. The secret is drawn once,
// at construction.
type GuessController struct {
	console  *views.Console
	min, max uint32
	secret   uint32
	attempts int
}

func NewGuessController(cfg utils.GuessConfig, console *views.Console, gen *stats.Generator) *GuessController {
	gc := &GuessController{
		console: console,
		min:     cfg.Min,
		max:     cfg.Max,
		secret:  gen.Inclusive(cfg.Min, cfg.Max),
	}
	utils.L().Debug("secret drawn  range=[%d,%d]", cfg.Min, cfg.Max)
	return gc
}

// Secret returns the number the player has to find.
func (gc *GuessController) Secret() uint32 { return gc.secret }

// Attempts returns how many parsable guesses were made.
func (gc *GuessController) Attempts() int { return gc.attempts }

func (gc *GuessController) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := gc.console.Prompt(views.GuessIntro, views.GuessRange(gc.min, gc.max), views.GuessPrompt)
		if errors.Is(err, utils.ErrEndOfInput) {
			utils.L().Info("input closed after %d guesses", gc.attempts)
			return nil
		}
		if err != nil {
			return err
		}

		guess, err := parseGuess(line)
		if err != nil {
			utils.L().Debug("guess ignored: %v", err)
			continue
		}
		gc.attempts++
		gc.console.Println(views.Guessed(guess))

		switch {
		case guess < gc.secret:
			gc.console.Println(views.TooLow)
		case guess > gc.secret:
			gc.console.Println(views.TooHigh)
		default:
			gc.console.Println(views.JustRight)
			utils.L().Info("secret found after %d guesses", gc.attempts)
			return nil
		}
	}
}

func parseGuess(line string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, utils.ParseErrorf(line, "not an unsigned integer")
	}
	return uint32(n), nil
}
