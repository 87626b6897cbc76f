package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tasklist/internal/cli/output"
	"github.com/leapstack-labs/tasklist/internal/console"
	"github.com/leapstack-labs/tasklist/internal/tasklist"
)

// RunConsole starts the interactive console. A terminal on stdin gets line
// editing, history and completion; anything else is read as a plain stream.
func RunConsole(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	if f, ok := cmd.InOrStdin().(*os.File); ok && output.IsTerminal(f) && cc.Renderer.IsTTY() {
		return runTerminal(cmd, cc)
	}
	return runStream(cmd, cc, cmd.InOrStdin())
}

func runTerminal(cmd *cobra.Command, cc *CommandContext) error {
	var in *tasklist.Interpreter

	term, err := console.NewTerminal(console.TerminalConfig{
		HistoryFile: cc.Cfg.HistoryFile,
		ProjectNames: func() []string {
			if in == nil {
				return nil
			}
			return projectNames(in.Store())
		},
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = term.Close() }()

	cc.Renderer.Banner("Task List", "Type help for commands, quit to exit")

	in = cc.newInterpreter(term, cc.Logger.With("console", "terminal"))
	if err := in.Run(cmd.Context()); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}
	return nil
}

func runStream(cmd *cobra.Command, cc *CommandContext, r io.Reader) error {
	stream := console.NewStream(r, cmd.OutOrStdout(), false)
	in := cc.newInterpreter(stream, cc.Logger.With("console", "stream"))
	if err := in.Run(cmd.Context()); err != nil {
		return fmt.Errorf("console stopped: %w", err)
	}
	return nil
}

func projectNames(s *tasklist.Store) []string {
	projects := s.Projects()
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}
