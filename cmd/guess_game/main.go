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
	cmd := controller.NewCommand("guess_game",
		"Guess a secret number between 1 and 100",
		func(cfg *utils.Config, console *views.Console) controller.Runner {
			// the sample-size cap is irrelevant here, only Inclusive is used
			gen := stats.NewGenerator(nil, 0)
			return controller.NewGuessController(cfg.Guess, console, gen)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
