// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration for srpcheck
type Config struct {
	Version     string `yaml:"version" json:"version"`
	ProjectName string `yaml:"project_name,omitempty" json:"project_name,omitempty"`

	// Analysis settings
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Rule-specific configurations
	Rules RulesConfig `yaml:"rules" json:"rules"`

	// File patterns
	Files FilesConfig `yaml:"files" json:"files"`
}

type AnalysisConfig struct {
	// MethodThreshold is the method-count ceiling; a class with more
	// directly-declared methods than this is flagged.
	MethodThreshold int `yaml:"method_threshold" json:"method_threshold"`

	// DependencyThreshold is the dependency-set-size ceiling; a class using
	// more non-injected collaborators than this is flagged.
	DependencyThreshold int `yaml:"dependency_threshold" json:"dependency_threshold"`
}

type OutputConfig struct {
	// Output format (console, json)
	Format string `yaml:"format" json:"format"`

	// Colorized output
	Colors bool `yaml:"colors" json:"colors"`

	// Verbosity level
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Output file path (optional)
	OutputFile string `yaml:"output_file,omitempty" json:"output_file,omitempty"`
}

type RulesConfig struct {
	MethodCount  MethodCountConfig  `yaml:"method_count" json:"method_count"`
	Dependencies DependenciesConfig `yaml:"dependencies" json:"dependencies"`
	MixedActions MixedActionsConfig `yaml:"mixed_actions" json:"mixed_actions"`
}

type MethodCountConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type DependenciesConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type MixedActionsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`

	// HarmlessTags are action tags ignored when counting how many distinct
	// actions a method mixes.
	HarmlessTags []string `yaml:"harmless_tags" json:"harmless_tags"`
}

type FilesConfig struct {
	// Include patterns
	Include []string `yaml:"include" json:"include"`

	// Exclude patterns
	Exclude []string `yaml:"exclude" json:"exclude"`

	// Max file size (in KB)
	MaxFileSize int `yaml:"max_file_size" json:"max_file_size"`
}

const (
	DefaultMethodThreshold     = 5
	DefaultDependencyThreshold = 2
)

func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Analysis: AnalysisConfig{
			MethodThreshold:     DefaultMethodThreshold,
			DependencyThreshold: DefaultDependencyThreshold,
		},
		Output: OutputConfig{
			Format:  "console",
			Colors:  true,
			Verbose: false,
		},
		Rules: RulesConfig{
			MethodCount:  MethodCountConfig{Enabled: true},
			Dependencies: DependenciesConfig{Enabled: true},
			MixedActions: MixedActionsConfig{
				Enabled:      true,
				HarmlessTags: []string{"now", "print_helper"},
			},
		},
		Files: FilesConfig{
			Include:     []string{"**/*.py"},
			Exclude:     []string{"venv/**", ".venv/**", "__pycache__/**", ".git/**"},
			MaxFileSize: 1024, // 1MB
		},
	}
}

// LoadConfig loads configuration from file or returns default
func LoadConfig(configPath string) (*Config, error) {
	// If no config path provided, look for default config files
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config found, return default
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := DefaultConfig() // Start with defaults

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	possiblePaths := []string{
		".srpcheck.yml",
		".srpcheck.yaml",
		"srpcheck.yml",
		"srpcheck.yaml",
		".config/srpcheck.yml",
		".config/srpcheck.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Analysis.MethodThreshold < 1 {
		return fmt.Errorf("method_threshold must be at least 1")
	}
	if c.Analysis.DependencyThreshold < 0 {
		return fmt.Errorf("dependency_threshold must not be negative")
	}

	validFormats := []string{"console", "json"}
	formatValid := false
	for _, format := range validFormats {
		if c.Output.Format == format {
			formatValid = true
			break
		}
	}
	if !formatValid {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, validFormats)
	}

	if c.Files.MaxFileSize < 1 {
		return fmt.Errorf("max_file_size must be at least 1 KB")
	}

	return nil
}

// SaveConfig saves configuration to file
func (c *Config) SaveConfig(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateConfig creates a sample configuration file
func GenerateConfig(configPath string) error {
	config := DefaultConfig()
	return config.SaveConfig(configPath)
}

// IsRuleEnabled checks if a specific rule is enabled
func (c *Config) IsRuleEnabled(rule string) bool {
	switch rule {
	case "method_count":
		return c.Rules.MethodCount.Enabled
	case "dependencies", "dependency_count":
		return c.Rules.Dependencies.Enabled
	case "mixed_actions":
		return c.Rules.MixedActions.Enabled
	default:
		return false
	}
}
