// Package config handles stalesweep configuration: a global YAML file under
// the user config directory, an optional local override, and environment
// fallbacks for values usually injected by the invoking workflow.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCallTimeoutSeconds bounds each individual API call unless
// overridden.
const DefaultCallTimeoutSeconds = 30

// Config represents the application configuration
type Config struct {
	// Repo is the target repository in owner/name form. Usually supplied
	// by the environment (GITHUB_REPOSITORY) rather than the file.
	Repo string `yaml:"repo,omitempty"`

	// InactiveFor is the inactivity threshold, e.g. "45m" or "30d".
	// Required: there is deliberately no default.
	InactiveFor string `yaml:"inactive_for,omitempty"`

	DefaultFormat  string   `yaml:"default_format,omitempty"`
	WebhookURL     string   `yaml:"webhook_url,omitempty"`
	ExemptUsers    []string `yaml:"exempt_users,omitempty"`
	DryRun         bool     `yaml:"dry_run,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".stalesweep"
	}
	return filepath.Join(configDir, "stalesweep")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".stalesweep.yaml"
}

// ConfigFileExists returns true if the config file exists on disk
func ConfigFileExists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Load loads the configuration from disk.
// It first loads the global config from the user config directory, then
// merges any local .stalesweep.yaml on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	return cfg, nil
}

// mergeConfig overlays local values onto the global config. Scalars
// replace when set; the exempt-user lists are unioned.
func mergeConfig(global, local *Config) *Config {
	result := *global

	if local.Repo != "" {
		result.Repo = local.Repo
	}
	if local.InactiveFor != "" {
		result.InactiveFor = local.InactiveFor
	}
	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}
	if local.WebhookURL != "" {
		result.WebhookURL = local.WebhookURL
	}
	if local.DryRun {
		result.DryRun = true
	}
	if local.TimeoutSeconds != 0 {
		result.TimeoutSeconds = local.TimeoutSeconds
	}

	if len(local.ExemptUsers) > 0 {
		seen := make(map[string]bool, len(result.ExemptUsers))
		for _, u := range result.ExemptUsers {
			seen[u] = true
		}
		for _, u := range local.ExemptUsers {
			if !seen[u] {
				result.ExemptUsers = append(result.ExemptUsers, u)
			}
		}
	}

	return &result
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment variable.
// Following 12-factor app practice, tokens are only read from the environment.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// GetRepo returns the target repository, falling back to the
// GITHUB_REPOSITORY environment variable set by workflow runners.
func (c *Config) GetRepo() string {
	if c.Repo != "" {
		return c.Repo
	}
	return os.Getenv("GITHUB_REPOSITORY")
}

// GetWebhookURL returns the chat webhook URL, falling back to the
// STALESWEEP_WEBHOOK_URL environment variable.
func (c *Config) GetWebhookURL() string {
	if c.WebhookURL != "" {
		return c.WebhookURL
	}
	return os.Getenv("STALESWEEP_WEBHOOK_URL")
}

// CallTimeout returns the per-call deadline.
func (c *Config) CallTimeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return DefaultCallTimeoutSeconds * time.Second
}

// SplitRepo splits an owner/name repository string.
func SplitRepo(s string) (owner, name string, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (expected owner/name)", s)
	}
	return parts[0], parts[1], nil
}

// ToYAML renders the config as YAML.
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// MinimalConfig returns a commented starter config file.
func MinimalConfig() string {
	return `# stalesweep configuration file

# Inactivity threshold before assignees are removed (required).
# Examples: 45m, 12h, 30d
inactive_for: 30d

# Target repository. Usually taken from GITHUB_REPOSITORY instead.
# repo: owner/name

# Users never unassigned, regardless of activity (optional)
# exempt_users:
#   - release-bot

# Chat webhook for run summaries (optional)
# webhook_url: https://hooks.example.com/services/XXX

# Output format: text, table, markdown, or json
# default_format: table
`
}

// SaveTo writes raw config content to the given path, creating parent
// directories as needed.
func SaveTo(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
