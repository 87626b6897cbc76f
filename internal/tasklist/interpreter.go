package tasklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/tasklist/pkg/core"
	"github.com/leapstack-labs/tasklist/pkg/parser"
)

// DefaultPrompt is shown before each line is read.
const DefaultPrompt = "> "

// Console is the line-oriented input and output the interpreter talks to.
type Console interface {
	// ReadLine shows prompt and returns the next line without its
	// terminator. It returns io.EOF when input has ended or was interrupted.
	ReadLine(prompt string) (string, error)
	// WriteLine appends s as one line of output. "" writes a blank line.
	WriteLine(s string)
}

// RunState is the interpreter's loop state.
type RunState int

// Run states.
const (
	Running RunState = iota
	Stopped
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Interpreter executes console commands against its own Store.
type Interpreter struct {
	console Console
	store   *Store
	logger  *slog.Logger
	prompt  string
	state   RunState
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(in *Interpreter) {
		in.prompt = prompt
	}
}

// New creates an interpreter with an empty store.
func New(console Console, opts ...Option) *Interpreter {
	in := &Interpreter{
		console: console,
		store:   NewStore(),
		logger:  slog.New(slog.DiscardHandler),
		prompt:  DefaultPrompt,
		state:   Running,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// State returns the current run state.
func (in *Interpreter) State() RunState {
	return in.state
}

// Store returns the interpreter's task store.
func (in *Interpreter) Store() *Store {
	return in.store
}

// Run reads, parses and executes lines until a quit command, end of input,
// or cancellation of ctx. Malformed lines are reported and skipped.
// The only error returned is a read failure other than io.EOF.
func (in *Interpreter) Run(ctx context.Context) error {
	for in.state == Running {
		if ctx.Err() != nil {
			in.logger.Debug("console cancelled", "error", ctx.Err())
			in.state = Stopped
			break
		}

		line, err := in.console.ReadLine(in.prompt)
		if errors.Is(err, io.EOF) {
			in.logger.Debug("end of input")
			in.state = Stopped
			break
		}
		if err != nil {
			in.state = Stopped
			return fmt.Errorf("failed to read command: %w", err)
		}

		in.ExecuteLine(line)
	}
	return nil
}

// ExecuteLine parses and executes a single line.
func (in *Interpreter) ExecuteLine(line string) {
	cmd, err := parser.Parse(line)
	if err != nil {
		in.logger.Debug("malformed command", "line", line, "error", err)
		in.reportMalformed(line)
		return
	}
	in.Execute(cmd)
}

// Execute runs one parsed command.
func (in *Interpreter) Execute(cmd core.Command) {
	in.logger.Debug("executing command", "command", cmd.Name(), "sub_command", core.SubCommand(cmd))

	switch c := cmd.(type) {
	case core.ShowCommand:
		in.show()
	case core.AddProjectCommand:
		in.addProject(c)
	case core.AddTaskCommand:
		in.addTask(c)
	case core.CheckCommand:
		in.setDone(c.TaskID, true)
	case core.UncheckCommand:
		in.setDone(c.TaskID, false)
	case core.HelpCommand:
		in.help()
	case core.QuitCommand:
		in.state = Stopped
	default:
		panic(fmt.Sprintf("tasklist: unhandled command %T", cmd))
	}
}

func (in *Interpreter) show() {
	for _, p := range in.store.Projects() {
		in.console.WriteLine(p.Name)
		for _, t := range p.Tasks {
			in.console.WriteLine(fmt.Sprintf("  [%s] %d: %s", t.Marker(), t.ID, t.Description))
		}
		in.console.WriteLine("")
	}
}

func (in *Interpreter) addProject(c core.AddProjectCommand) {
	in.store.AddProject(c.ProjectName)
}

func (in *Interpreter) addTask(c core.AddTaskCommand) {
	task, ok := in.store.AddTask(c.ProjectName, c.Description)
	if !ok {
		in.console.WriteLine(fmt.Sprintf("Could not find a project with the name %s.", c.ProjectName))
		in.console.WriteLine("")
		return
	}
	in.logger.Debug("task added", "project", c.ProjectName, "id", task.ID)
}

func (in *Interpreter) setDone(id int, done bool) {
	if in.store.SetDone(id, done) {
		return
	}
	in.console.WriteLine(fmt.Sprintf("Could not find a task with an ID of %d", id))
	in.console.WriteLine("")
}

func (in *Interpreter) help() {
	for _, line := range helpLines {
		in.console.WriteLine(line)
	}
	in.console.WriteLine("")
}

func (in *Interpreter) reportMalformed(line string) {
	in.console.WriteLine(fmt.Sprintf("I don't know what the command '%s' is.", line))
	in.console.WriteLine("")
}

var helpLines = []string{
	"Commands:",
	"  show",
	"  add project <project name>",
	"  add task <project name> <task description>",
	"  check <task ID>",
	"  uncheck <task ID>",
	"  help",
	"  quit",
}
