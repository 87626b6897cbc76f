package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("prompt", "", "")
	fs.String("history-file", "", "")
	fs.String("log-level", "", "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	return fs
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "tasklist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())

	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(home, ".tasklist", "history"), cfg.HistoryFile)
	}
}

func TestLoadConfig_FileDiscovered(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "prompt: \"tasks> \"\nlog_level: info\nhistory_file: \"\"\n")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "tasks> ", cfg.Prompt)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.HistoryFile)
	assert.Equal(t, "tasklist.yaml", GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, t.TempDir(), "output: json\n")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "prompt: \"file> \"\noutput: text\nlog_level: error\n")
	t.Setenv("TASKLIST_PROMPT", "env> ")
	t.Setenv("TASKLIST_OUTPUT", "markdown")

	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--output", "json"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, "env> ", cfg.Prompt, "env overrides file")
	assert.Equal(t, "json", cfg.OutputFormat, "flag overrides env")
	assert.Equal(t, "error", cfg.LogLevel, "file overrides default")
}

func TestLoadConfig_KebabFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	flags := newFlags(t)
	require.NoError(t, flags.Parse([]string{"--history-file", "/tmp/h", "--log-level", "debug", "-v"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/h", cfg.HistoryFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKLIST_OUTPUT", "xml")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    slog.Level
		wantErr bool
	}{
		{"warn", Config{LogLevel: "warn"}, slog.LevelWarn, false},
		{"upper case", Config{LogLevel: "INFO"}, slog.LevelInfo, false},
		{"verbose wins", Config{LogLevel: "error", Verbose: true}, slog.LevelDebug, false},
		{"unknown", Config{LogLevel: "loud"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Level()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "fallback logger")

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Defaults(), FromContext(context.Background()))

	cfg := &Config{Prompt: "x> "}
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}
