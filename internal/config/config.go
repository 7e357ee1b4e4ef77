// Package config loads the binaries' settings from the environment, with
// an optional .env file in the working directory.
package config

import (
	"github.com/zakazai/normtab/internal/prompt"
	"github.com/zakazai/normtab/internal/types"
)

// Config holds all settings shared by the binaries.
type Config struct {
	Logging LoggingConfig
	Prompt  PromptConfig
	Export  ExportConfig
}

// LoggingConfig selects the stderr log level.
type LoggingConfig struct {
	// Level is one of debug, info, warning, error, none (default: warning)
	Level string `env:"NORMTAB_LOG_LEVEL" default:"warning"`
}

// PromptConfig controls the interactive input collaborator.
type PromptConfig struct {
	// Policy is reprompt or terminate; empty leaves the binary's default
	Policy string `env:"NORMTAB_PROMPT_POLICY"`

	// Color echoes user input in green (default: true)
	Color bool `env:"NORMTAB_COLOR" default:"true"`
}

// ExportConfig controls parquet snapshots of rendered tables.
type ExportConfig struct {
	// ParquetDir receives <table>.parquet files; empty disables export
	ParquetDir string `env:"NORMTAB_PARQUET_DIR"`
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() types.LogLevel {
	return types.ParseLogLevel(c.Logging.Level)
}

// PromptPolicy returns the configured policy, or fallback when unset.
func (c *Config) PromptPolicy(fallback prompt.Policy) prompt.Policy {
	if c.Prompt.Policy == "" {
		return fallback
	}
	p, err := prompt.ParsePolicy(c.Prompt.Policy)
	if err != nil {
		return fallback
	}
	return p
}
