package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("pig_latin",
		"Translate a single word to pig latin",
		func(_ *utils.Config, console *views.Console) controller.Runner {
			return controller.NewPigLatinController(console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
