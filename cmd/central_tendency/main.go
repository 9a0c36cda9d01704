package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/services/stats"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("central_tendency",
		"Draw a random integer sample from a range and print its mean, mode and median",
		func(cfg *utils.Config, console *views.Console) controller.Runner {
			gen := stats.NewGenerator(nil, cfg.Tendency.MaxSampleSize)
			return controller.NewTendencyController(console, gen)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
