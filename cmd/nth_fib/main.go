package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("nth_fib",
		"Print the n-th Fibonacci number",
		func(_ *utils.Config, console *views.Console) controller.Runner {
			return controller.NewFibController(console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
