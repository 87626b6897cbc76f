package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand matches every error returned by Parse.
var ErrMalformedCommand = errors.New("malformed command")

// MalformedCommandError reports a line that is not a valid command.
type MalformedCommandError struct {
	Line   string // the line exactly as it was read
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("malformed command %q: %s", e.Line, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedCommand) match.
func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}

func malformed(line, format string, args ...any) *MalformedCommandError {
	return &MalformedCommandError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Common error messages
const (
	ErrEmptyCommand       = "empty command"
	ErrUnknownCommand     = "unknown command %q"
	ErrMissingSubCommand  = "missing sub-command, expected one of %v"
	ErrUnknownSubCommand  = "unknown sub-command %q, expected one of %v"
	ErrNotEnoughArguments = "expected %d argument(s), got %d"
	ErrUnexpectedArgs     = "takes no arguments, got %d"
	ErrInvalidTaskID      = "invalid task ID %q"
)
