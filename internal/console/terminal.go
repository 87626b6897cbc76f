// Package console provides the line input and output used by the task list
// interpreter: a readline-backed terminal and a plain stream for pipes and
// script files.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/leapstack-labs/tasklist/pkg/core"
)

// TerminalConfig configures a Terminal.
type TerminalConfig struct {
	// HistoryFile persists line history between sessions. Empty disables it.
	HistoryFile string
	// ProjectNames, if set, supplies project names for tab completion.
	ProjectNames func() []string

	// Optional overrides for the standard streams.
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

// Terminal is an interactive console with line editing, history and tab
// completion.
type Terminal struct {
	rl *readline.Instance
}

// NewTerminal creates a terminal console. Close must be called to restore
// the terminal state.
func NewTerminal(cfg TerminalConfig) (*Terminal, error) {
	if cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    NewCompleter(cfg.ProjectNames),
		InterruptPrompt: "^C",
		EOFPrompt:       string(core.CommandQuit),
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return &Terminal{rl: rl}, nil
}

// ReadLine reads one edited line. Ctrl-C and Ctrl-D both end input.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// WriteLine prints s above the prompt.
func (t *Terminal) WriteLine(s string) {
	_, _ = fmt.Fprintln(t.rl.Stdout(), s)
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.rl.Close()
}

// NewCompleter creates a readline completer for the command grammar.
// Project names are completed after "add task" when projectNames is set.
func NewCompleter(projectNames func() []string) *readline.PrefixCompleter {
	addTask := readline.PcItem(core.SubCommandTask)
	if projectNames != nil {
		addTask = readline.PcItem(core.SubCommandTask, readline.PcItemDynamic(func(string) []string {
			return projectNames()
		}))
	}

	var items []readline.PrefixCompleterInterface
	for _, name := range core.CommandNames() {
		if name == core.CommandAdd {
			items = append(items, readline.PcItem(string(name),
				readline.PcItem(core.SubCommandProject),
				addTask,
			))
			continue
		}
		items = append(items, readline.PcItem(string(name)))
	}
	return readline.NewPrefixCompleter(items...)
}
