package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("f_to_c",
		"Convert a temperature between Fahrenheit and Celsius",
		func(_ *utils.Config, console *views.Console) controller.Runner {
			return controller.NewTemperatureController(console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
