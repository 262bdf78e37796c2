package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TAVILY_API_KEY", "tvly-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "tvly-test", cfg.Tavily.APIKey)
	assert.Equal(t, "https://api.tavily.com", cfg.Tavily.Endpoint)
	assert.Equal(t, "basic", cfg.Tavily.Depth)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 8, cfg.Research.MaxSteps)
	assert.Equal(t, 7, cfg.Research.MaxResults)
	assert.Equal(t, "finance", cfg.Research.Topic)
	assert.Equal(t, "investment_research_report.md", cfg.Research.OutputFile)
}

func TestLoadConfigMissingTavilyKey(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv above registered the restore; drop the variable entirely
	os.Unsetenv("TAVILY_API_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAVILY_API_KEY")
}

func TestLoadConfigMissingOpenAIKey(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("OPENAI_API_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestApplyFileOverlaysRunParameters(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"model: gpt-4o-mini\nmax_steps: 3\noutput_file: acme.md\nsearch_depth: advanced\n"), 0o644))

	require.NoError(t, cfg.ApplyFile(path))

	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 3, cfg.Research.MaxSteps)
	assert.Equal(t, "acme.md", cfg.Research.OutputFile)
	assert.Equal(t, "advanced", cfg.Tavily.Depth)

	// untouched settings keep their env-derived values
	assert.Equal(t, 7, cfg.Research.MaxResults)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
}

func TestApplyFileMissingFile(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "absent.yaml")))
}
