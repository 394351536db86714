package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Analysis.MethodThreshold)
	assert.Equal(t, 2, cfg.Analysis.DependencyThreshold)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.True(t, cfg.Rules.MethodCount.Enabled)
	assert.True(t, cfg.Rules.Dependencies.Enabled)
	assert.True(t, cfg.Rules.MixedActions.Enabled)
	assert.Equal(t, []string{"now", "print_helper"}, cfg.Rules.MixedActions.HarmlessTags)
}

func TestLoadConfig_MissingPathFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "srpcheck.yml")
	data := `analysis:
  method_threshold: 8
  dependency_threshold: 4
output:
  format: json
  colors: false
rules:
  mixed_actions:
    enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Analysis.MethodThreshold)
	assert.Equal(t, 4, cfg.Analysis.DependencyThreshold)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Colors)
	assert.False(t, cfg.Rules.MixedActions.Enabled)
	// Untouched sections keep their defaults.
	assert.True(t, cfg.Rules.MethodCount.Enabled)
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "srpcheck.yml")
	require.NoError(t, os.WriteFile(path, []byte("analysis: ["), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero method threshold", func(c *Config) { c.Analysis.MethodThreshold = 0 }, "method_threshold"},
		{"negative dependency threshold", func(c *Config) { c.Analysis.DependencyThreshold = -1 }, "dependency_threshold"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "invalid output format"},
		{"zero max file size", func(c *Config) { c.Files.MaxFileSize = 0 }, "max_file_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateConfig_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", ".srpcheck.yml")
	require.NoError(t, GenerateConfig(path))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Analysis, cfg.Analysis)
	assert.Equal(t, DefaultConfig().Rules, cfg.Rules)
}

func TestIsRuleEnabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Rules.Dependencies.Enabled = false

	assert.True(t, cfg.IsRuleEnabled("method_count"))
	assert.False(t, cfg.IsRuleEnabled("dependencies"))
	assert.False(t, cfg.IsRuleEnabled("dependency_count"))
	assert.True(t, cfg.IsRuleEnabled("mixed_actions"))
	assert.False(t, cfg.IsRuleEnabled("unknown"))
}
