package core

// =============================================================================
// CommandName
// =============================================================================

// CommandName is the first token of a console command.
type CommandName string

// Recognized command names.
const (
	CommandShow    CommandName = "show"
	CommandAdd     CommandName = "add"
	CommandCheck   CommandName = "check"
	CommandUncheck CommandName = "uncheck"
	CommandHelp    CommandName = "help"
	CommandQuit    CommandName = "quit"
)

// Sub-command names accepted after "add".
const (
	SubCommandProject = "project"
	SubCommandTask    = "task"
)

// CommandNames returns the top-level command names in grammar order.
func CommandNames() []CommandName {
	return []CommandName{
		CommandShow,
		CommandAdd,
		CommandCheck,
		CommandUncheck,
		CommandHelp,
		CommandQuit,
	}
}

// AddSubCommands returns the sub-command names accepted after "add".
func AddSubCommands() []string {
	return []string{SubCommandProject, SubCommandTask}
}

// =============================================================================
// Command
// =============================================================================

// Command is a single parsed user intent.
//
// The set of implementations is closed: only the variants declared in this
// file satisfy the interface, so a type switch over them is exhaustive.
type Command interface {
	Name() CommandName
	command()
}

// ShowCommand lists every project and its tasks.
type ShowCommand struct{}

// AddProjectCommand creates (or resets) a project.
type AddProjectCommand struct {
	ProjectName string
}

// AddTaskCommand appends a task to an existing project.
type AddTaskCommand struct {
	ProjectName string
	Description string
}

// CheckCommand marks a task as done.
type CheckCommand struct {
	TaskID int
}

// UncheckCommand marks a task as not done.
type UncheckCommand struct {
	TaskID int
}

// HelpCommand prints the usage summary.
type HelpCommand struct{}

// QuitCommand stops the console.
type QuitCommand struct{}

func (ShowCommand) Name() CommandName       { return CommandShow }
func (AddProjectCommand) Name() CommandName { return CommandAdd }
func (AddTaskCommand) Name() CommandName    { return CommandAdd }
func (CheckCommand) Name() CommandName      { return CommandCheck }
func (UncheckCommand) Name() CommandName    { return CommandUncheck }
func (HelpCommand) Name() CommandName       { return CommandHelp }
func (QuitCommand) Name() CommandName       { return CommandQuit }

func (ShowCommand) command()       {}
func (AddProjectCommand) command() {}
func (AddTaskCommand) command()    {}
func (CheckCommand) command()      {}
func (UncheckCommand) command()    {}
func (HelpCommand) command()       {}
func (QuitCommand) command()       {}

// SubCommand returns the "add" sub-command of cmd, or "" for commands
// that take none.
func SubCommand(cmd Command) string {
	switch cmd.(type) {
	case AddProjectCommand:
		return SubCommandProject
	case AddTaskCommand:
		return SubCommandTask
	default:
		return ""
	}
}
