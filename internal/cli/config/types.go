// Package config provides configuration management for the tasklist CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Prompt       string `koanf:"prompt"`
	HistoryFile  string `koanf:"history_file"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultPrompt      = "> "
	DefaultHistoryFile = "~/.tasklist/history"
	DefaultLogLevel    = "warn"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Defaults returns a Config populated with default values.
func Defaults() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		HistoryFile:  expandHome(DefaultHistoryFile),
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
	}
}
