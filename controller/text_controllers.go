package controller

import (
	"context"
	"errors"
	"strings"

	"practice-cli/services/text"
	"practice-cli/utils"
	"practice-cli/views"
)

// PigLatinController runs pig_latin on a single token.
type PigLatinController struct {
	console *views.Console
}

func NewPigLatinController(console *views.Console) *PigLatinController {
	return &PigLatinController{console: console}
}

func (pc *PigLatinController) Run(_ context.Context) error {
	line, err := pc.console.Prompt(views.PigLatinPrompt)
	if err != nil && !errors.Is(err, utils.ErrEndOfInput) {
		return err
	}
	token := strings.TrimSpace(line)
	pc.console.Println(views.PigLatin(token, text.PigLatin(token)))
	return nil
}

// ReverseController runs string_reverse. Only the line terminator is
// removed; inner and leading whitespace is reversed along with the rest.
type ReverseController struct {
	console *views.Console
}

func NewReverseController(console *views.Console) *ReverseController {
	return &ReverseController{console: console}
}

func (rc *ReverseController) Run(_ context.Context) error {
	line, err := rc.console.Prompt(views.ReversePrompt)
	if err != nil && !errors.Is(err, utils.ErrEndOfInput) {
		return err
	}
	rc.console.Println(views.Reversed(line, text.Reverse(line)))
	return nil
}
