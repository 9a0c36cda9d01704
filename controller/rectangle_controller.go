package controller

import (
	"context"

	"practice-cli/models"
	"practice-cli/utils"
	"practice-cli/views"
)

// RectangleController prints the area of a fixed rectangle.
type RectangleController struct {
	console *views.Console
	rect    models.Rectangle
}

func NewRectangleController(cfg utils.RectangleConfig, console *views.Console) *RectangleController {
	return &RectangleController{
		console: console,
		rect:    models.Rectangle{Width: cfg.Width, Height: cfg.Height},
	}
}

func (rc *RectangleController) Run(_ context.Context) error {
	utils.L().Debug("rectangle %+v", rc.rect)
	rc.console.Println(views.RectangleArea(rc.rect))
	return nil
}
