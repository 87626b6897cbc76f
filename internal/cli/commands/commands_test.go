package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tasklist/internal/cli/config"
	clitest "github.com/leapstack-labs/tasklist/internal/cli/testutil"
	"github.com/leapstack-labs/tasklist/internal/cli/output"
	"github.com/leapstack-labs/tasklist/internal/tasklist"
	"github.com/leapstack-labs/tasklist/internal/testutil"
)

var scenario = []string{
	"add project Secrets",
	"add task Secrets Learn the drill",
	"show",
	"check 1",
	"show",
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	ctx := config.WithLogger(context.Background(), testutil.NewTestLogger(t))
	if cfg != nil {
		ctx = config.WithConfig(ctx, cfg)
	}
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestNewRunCommand(t *testing.T) {
	cmd := NewRunCommand()

	assert.Equal(t, "run <script>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"echo", "report"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRunCommand_Scenario(t *testing.T) {
	out, _, err := execute(t, NewRunCommand(), "", nil, clitest.WriteScript(t, scenario...))
	require.NoError(t, err)

	assert.Equal(t, "Secrets\n  [ ] 1: Learn the drill\n\nSecrets\n  [x] 1: Learn the drill\n\n", out)
}

func TestRunCommand_Stdin(t *testing.T) {
	out, _, err := execute(t, NewRunCommand(), "add project a\nfrobnicate\nshow\n", nil, "-")
	require.NoError(t, err)

	assert.Equal(t, "I don't know what the command 'frobnicate' is.\n\na\n\n", out)
}

func TestRunCommand_QuitEndsScript(t *testing.T) {
	out, _, err := execute(t, NewRunCommand(), "", nil, clitest.WriteScript(t, "add project a", "quit", "show"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunCommand_Echo(t *testing.T) {
	cfg := config.Defaults()
	cfg.Prompt = "tasks> "

	out, _, err := execute(t, NewRunCommand(), "", cfg, clitest.WriteScript(t, "add project a", "show"), "--echo")
	require.NoError(t, err)
	assert.Equal(t, "tasks> add project a\ntasks> show\na\n\n", out)
}

func TestRunCommand_ReportJSON(t *testing.T) {
	cfg := config.Defaults()
	cfg.OutputFormat = string(output.ModeJSON)

	script := clitest.WriteScript(t,
		"add project a",
		"add task a one",
		"add task a two",
		"check 2",
		"add project b",
	)
	out, _, err := execute(t, NewRunCommand(), "", cfg, script, "--report")
	require.NoError(t, err)

	var got []output.ProjectSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []output.ProjectSummary{
		{Name: "a", Tasks: 2, Done: 1, Open: 1},
		{Name: "b"},
	}, got)
}

func TestRunCommand_MissingScript(t *testing.T) {
	_, _, err := execute(t, NewRunCommand(), "", nil, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")
}

func TestRunConsole_Stream(t *testing.T) {
	cmd := &cobra.Command{
		Use: "console",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunConsole(cmd)
		},
	}

	out, _, err := execute(t, cmd, strings.Join(scenario, "\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Secrets\n  [ ] 1: Learn the drill\n\nSecrets\n  [x] 1: Learn the drill\n\n", out)
}

func TestProjectNames(t *testing.T) {
	s := tasklist.NewStore()
	assert.Empty(t, projectNames(s))

	s.AddProject("b")
	s.AddProject("a")
	assert.Equal(t, []string{"b", "a"}, projectNames(s))
}
