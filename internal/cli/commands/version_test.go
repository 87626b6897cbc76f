package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "0.1.0", want: "tasklist v0.1.0\nInteractive task tracking console\n"},
		{version: "dev", want: "tasklist vdev\nInteractive task tracking console\n"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestNewVersionCommand_RejectsArgs(t *testing.T) {
	cmd := NewVersionCommand("0.1.0")
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
