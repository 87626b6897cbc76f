// Package commands implements the tasklist subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tasklist/internal/cli/config"
	"github.com/leapstack-labs/tasklist/internal/cli/output"
	"github.com/leapstack-labs/tasklist/internal/tasklist"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// newInterpreter creates an interpreter wired to the context's logger and prompt.
func (cc *CommandContext) newInterpreter(c tasklist.Console, logger *slog.Logger) *tasklist.Interpreter {
	return tasklist.New(c,
		tasklist.WithLogger(logger),
		tasklist.WithPrompt(cc.Cfg.Prompt),
	)
}
