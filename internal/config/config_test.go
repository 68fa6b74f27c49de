package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, "normal", cfg.Pipeline.Mode)
	assert.False(t, cfg.Pipeline.RepairJSON)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_OverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("HYPROMPT_TEST_KEY", "sk-test")

	path := writeConfig(t, `
llm:
  model: gpt-3.5-turbo
  openai:
    api_key: ${HYPROMPT_TEST_KEY}
    base_url: https://openrouter.ai/api/v1
    timeout: 30s
    headers:
      X-Title: hyprompt
pipeline:
  mode: master
  repair_json: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.OpenAI.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.LLM.OpenAI.Timeout)
	assert.Equal(t, "hyprompt", cfg.LLM.OpenAI.Headers["X-Title"])
	assert.Equal(t, "master", cfg.Pipeline.Mode)
	assert.True(t, cfg.Pipeline.RepairJSON)

	// untouched sections keep their defaults
	assert.Equal(t, "console", cfg.Log.Encoding)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "llm: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
