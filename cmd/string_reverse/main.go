package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("string_reverse",
		"Reverse a line of text by code point",
		func(_ *utils.Config, console *views.Console) controller.Runner {
			return controller.NewReverseController(console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
