// Package parser turns a console line into a core.Command.
//
// The grammar is two levels deep: a command name, and for "add" a
// sub-command selecting between a project and a task. Arguments are
// whitespace-separated tokens; the last argument absorbs any remaining
// tokens joined by single spaces.
package parser

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/tasklist/pkg/core"
)

// constructor builds one command variant from exactly arity arguments.
type constructor struct {
	arity int
	build func(args []string) (core.Command, error)
}

var commands = map[core.CommandName]constructor{
	core.CommandShow: {0, func([]string) (core.Command, error) {
		return core.ShowCommand{}, nil
	}},
	core.CommandCheck: {1, func(args []string) (core.Command, error) {
		id, err := parseTaskID(args[0])
		if err != nil {
			return nil, err
		}
		return core.CheckCommand{TaskID: id}, nil
	}},
	core.CommandUncheck: {1, func(args []string) (core.Command, error) {
		id, err := parseTaskID(args[0])
		if err != nil {
			return nil, err
		}
		return core.UncheckCommand{TaskID: id}, nil
	}},
	core.CommandHelp: {0, func([]string) (core.Command, error) {
		return core.HelpCommand{}, nil
	}},
	core.CommandQuit: {0, func([]string) (core.Command, error) {
		return core.QuitCommand{}, nil
	}},
}

var addCommands = map[string]constructor{
	core.SubCommandProject: {1, func(args []string) (core.Command, error) {
		return core.AddProjectCommand{ProjectName: args[0]}, nil
	}},
	core.SubCommandTask: {2, func(args []string) (core.Command, error) {
		return core.AddTaskCommand{ProjectName: args[0], Description: args[1]}, nil
	}},
}

// invalidTaskID is returned by constructors and turned into a
// MalformedCommandError by Parse.
type invalidTaskID string

func (s invalidTaskID) Error() string { return string(s) }

func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidTaskID(s)
	}
	return id, nil
}

// Parse converts a raw line into a command.
//
// Every failure is a *MalformedCommandError carrying the original line.
// Parse has no side effects.
func Parse(line string) (core.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, malformed(line, ErrEmptyCommand)
	}

	name, args := core.CommandName(tokens[0]), tokens[1:]

	var ctor constructor
	if name == core.CommandAdd {
		if len(args) == 0 {
			return nil, malformed(line, ErrMissingSubCommand, core.AddSubCommands())
		}
		sub, ok := addCommands[args[0]]
		if !ok {
			return nil, malformed(line, ErrUnknownSubCommand, args[0], core.AddSubCommands())
		}
		ctor, args = sub, args[1:]
	} else {
		c, ok := commands[name]
		if !ok {
			return nil, malformed(line, ErrUnknownCommand, tokens[0])
		}
		ctor = c
	}

	fields, err := foldArgs(line, args, ctor.arity)
	if err != nil {
		return nil, err
	}

	cmd, err := ctor.build(fields)
	if err != nil {
		return nil, malformed(line, ErrInvalidTaskID, err.Error())
	}
	return cmd, nil
}

// foldArgs returns exactly arity fields, joining surplus tokens into the
// last one.
func foldArgs(line string, args []string, arity int) ([]string, error) {
	switch {
	case arity == 0 && len(args) > 0:
		return nil, malformed(line, ErrUnexpectedArgs, len(args))
	case len(args) < arity:
		return nil, malformed(line, ErrNotEnoughArguments, arity, len(args))
	case len(args) == arity:
		return args, nil
	}

	fields := make([]string, arity)
	copy(fields, args[:arity-1])
	fields[arity-1] = strings.Join(args[arity-1:], " ")
	return fields, nil
}
