// Package core defines the shared language of the task list.
//
// This package contains:
//   - Domain entities (Task, Project)
//   - The closed set of console commands (Command and its variants)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// The parser, the interpreter and the CLI depend on core, not the reverse.
package core
