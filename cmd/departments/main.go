package main

import (
	"context"
	"os"

	"practice-cli/controller"
	"practice-cli/utils"
	"practice-cli/views"
)

func main() {
	cmd := controller.NewCommand("departments",
		"Interactive in-memory directory of employees per department",
		func(cfg *utils.Config, console *views.Console) controller.Runner {
			return controller.NewDepartmentsController(cfg.Departments, console)
		})
	os.Exit(controller.Execute(context.Background(), cmd))
}
