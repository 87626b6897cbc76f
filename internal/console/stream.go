package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stream is a console over plain readers and writers, used when stdin is
// not a terminal and for script files. Lines may be of any length.
type Stream struct {
	reader *bufio.Reader
	out    io.Writer
	echo   bool
}

// NewStream creates a console reading lines from r and writing to w.
// When echo is true each line read is written back after the prompt, so the
// output reads as a session transcript.
func NewStream(r io.Reader, w io.Writer, echo bool) *Stream {
	return &Stream{reader: bufio.NewReader(r), out: w, echo: echo}
}

// ReadLine returns the next line without its line ending, or io.EOF once
// input is exhausted. A final line without a newline is still returned.
func (s *Stream) ReadLine(prompt string) (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	if err != nil && line == "" {
		return "", io.EOF
	}

	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if s.echo {
		_, _ = fmt.Fprintln(s.out, prompt+line)
	}
	return line, nil
}

// WriteLine writes s followed by a newline.
func (s *Stream) WriteLine(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
