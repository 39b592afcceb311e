// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
	Jira   JiraConfig
	Bridge BridgeConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token string

	// Domain is the GitHub host, "github.com" unless a GitHub Enterprise
	// instance is used.
	Domain string
}

// JiraConfig holds Jira specific configuration.
type JiraConfig struct {
	URL      string
	Username string
	Token    string
}

// BridgeConfig holds the endpoint the built message bodies are delivered to.
type BridgeConfig struct {
	URL   string
	Token string
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("github.domain", "GITHUB_DOMAIN")
	v.BindEnv("jira.url", "JIRA_URL")
	v.BindEnv("jira.username", "JIRA_USERNAME")
	v.BindEnv("jira.token", "JIRA_TOKEN")
	v.BindEnv("bridge.url", "BRIDGE_URL")
	v.BindEnv("bridge.token", "BRIDGE_TOKEN")

	v.SetDefault("github.domain", "github.com")

	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Jira: JiraConfig{
			URL:      v.GetString("jira.url"),
			Username: v.GetString("jira.username"),
			Token:    v.GetString("jira.token"),
		},
		Bridge: BridgeConfig{
			URL:   v.GetString("bridge.url"),
			Token: v.GetString("bridge.token"),
		},
	}

	return config, nil
}

// ValidateGitHubConfig validates GitHub-specific configuration.
func ValidateGitHubConfig(config *Config) error {
	var missingVars []string

	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateJiraConfig validates Jira-specific configuration.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.URL == "" {
		missingVars = append(missingVars, "JIRA_URL")
	}
	if config.Jira.Username == "" {
		missingVars = append(missingVars, "JIRA_USERNAME")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateBridgeConfig validates the bridge endpoint configuration.
func ValidateBridgeConfig(config *Config) error {
	var missingVars []string

	if config.Bridge.URL == "" {
		missingVars = append(missingVars, "BRIDGE_URL")
	}
	if config.Bridge.Token == "" {
		missingVars = append(missingVars, "BRIDGE_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
