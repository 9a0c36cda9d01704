package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"practice-cli/utils"
	"practice-cli/views"
)

// Runner is implemented by every program controller. Run drives one whole
// interactive session over the controller's console.
type Runner interface {
	Run(ctx context.Context) error
}

// Builder constructs the controller for a single run once the config is
// known.
type Builder func(cfg *utils.Config, console *views.Console) Runner

// NewCommand wraps a program in a cobra command carrying the common flags.
// The program itself takes no positional arguments.
func NewCommand(use, short string, build Builder) *cobra.Command {
	var opts utils.Options

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := utils.Bootstrap(opts)
			if err != nil {
				return err
			}
			defer logger.Close()

			logger.Info("%s started", use)
			console := views.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := build(cfg, console).Run(cmd.Context()); err != nil {
				logger.Error("%s stopped: %v", use, err)
				return err
			}
			logger.Info("%s finished", use)
			return nil
		},
	}
	utils.BindFlags(cmd.Flags(), &opts)
	return cmd
}

// Execute runs cmd and maps the outcome to a process exit code. Failures are
// reported on the command's output stream, next to the session itself.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if utils.IsReadError(err) {
		fmt.Fprintln(cmd.OutOrStdout(), views.ReadFailure)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), err)
	}
	return 1
}
