package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tasklist/internal/console"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Echo   bool
	Report bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a file of console commands",
		Long: `Execute console commands from a file, one per line, then exit.

The script runs through the same interpreter as the interactive console:
malformed lines are reported and skipped, and a quit line ends the script
early. Use "-" to read the script from stdin.`,
		Example: `  # Run a script
  tasklist run tasks.txt

  # Print each command before its output
  tasklist run tasks.txt --echo

  # Summarize projects afterwards as JSON
  tasklist run tasks.txt --report -o json

  # Read from stdin
  printf 'add project a\nshow\n' | tasklist run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Echo, "echo", false, "Echo each command after the prompt")
	cmd.Flags().BoolVar(&opts.Report, "report", false, "Print a per-project summary when the script ends")

	return cmd
}

func runScript(cmd *cobra.Command, path string, opts *RunOptions) error {
	cc := NewCommandContext(cmd)

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	logger := cc.Logger.With("script", path)
	logger.Debug("running script")

	stream := console.NewStream(r, cmd.OutOrStdout(), opts.Echo)
	in := cc.newInterpreter(stream, logger)
	if err := in.Run(cmd.Context()); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}

	if opts.Report {
		return cc.Renderer.ProjectReport(in.Store().Projects())
	}
	return nil
}
