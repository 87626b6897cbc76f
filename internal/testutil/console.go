package testutil

import (
	"io"
	"strings"
)

// ScriptedConsole replays a fixed list of input lines and records every
// line written. Once the script is exhausted ReadLine returns Err, or
// io.EOF if Err is nil.
type ScriptedConsole struct {
	Lines   []string
	Prompts []string
	Output  []string
	Err     error

	next int
}

// NewScriptedConsole returns a console that will read lines in order.
func NewScriptedConsole(lines ...string) *ScriptedConsole {
	return &ScriptedConsole{Lines: lines}
}

// ReadLine returns the next scripted line.
func (c *ScriptedConsole) ReadLine(prompt string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if c.next >= len(c.Lines) {
		if c.Err != nil {
			return "", c.Err
		}
		return "", io.EOF
	}
	line := c.Lines[c.next]
	c.next++
	return line, nil
}

// WriteLine records s.
func (c *ScriptedConsole) WriteLine(s string) {
	c.Output = append(c.Output, s)
}

// Consumed returns how many scripted lines have been read.
func (c *ScriptedConsole) Consumed() int {
	return c.next
}

// Text returns the recorded output joined with newlines, one per line.
func (c *ScriptedConsole) Text() string {
	if len(c.Output) == 0 {
		return ""
	}
	return strings.Join(c.Output, "\n") + "\n"
}

// Reset clears the recorded output.
func (c *ScriptedConsole) Reset() {
	c.Output = nil
}
