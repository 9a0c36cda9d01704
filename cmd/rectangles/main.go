package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("rectangles",
		"Print the area of a 30x50 rectangle",
		func(cfg *utils.Config, console *views.Console) controller.Runner {
			return controller.NewRectangleController(cfg.Rectangle, console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
