package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zakazai/normtab/internal/prompt"
	"github.com/zakazai/normtab/internal/types"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("NORMTAB_LOG_LEVEL", "")
	t.Setenv("NORMTAB_PROMPT_POLICY", "")
	t.Setenv("NORMTAB_COLOR", "")
	t.Setenv("NORMTAB_PARQUET_DIR", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "warning", cfg.Logging.Level)
	assert.Equal(t, types.LogLevelWarning, cfg.LogLevel())
	assert.True(t, cfg.Prompt.Color)
	assert.Empty(t, cfg.Export.ParquetDir)
	assert.Equal(t, prompt.Terminate, cfg.PromptPolicy(prompt.Terminate))
	assert.Equal(t, prompt.Reprompt, cfg.PromptPolicy(prompt.Reprompt))
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("NORMTAB_LOG_LEVEL", "debug")
	t.Setenv("NORMTAB_PROMPT_POLICY", "terminate")
	t.Setenv("NORMTAB_COLOR", "false")
	t.Setenv("NORMTAB_PARQUET_DIR", "/tmp/out")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, types.LogLevelDebug, cfg.LogLevel())
	assert.False(t, cfg.Prompt.Color)
	assert.Equal(t, "/tmp/out", cfg.Export.ParquetDir)
	assert.Equal(t, prompt.Terminate, cfg.PromptPolicy(prompt.Reprompt))
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad bool", key: "NORMTAB_COLOR", val: "maybe"},
		{name: "bad level", key: "NORMTAB_LOG_LEVEL", val: "loud"},
		{name: "bad policy", key: "NORMTAB_PROMPT_POLICY", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
