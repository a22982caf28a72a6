package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ManifestFile    string `mapstructure:"manifest_file"`
	VersionFileName string `mapstructure:"version_file_name"`
	PrereleaseLabel string `mapstructure:"prerelease_label"`
	StateDir        string `mapstructure:"state_dir"`
	GithubToken     string `mapstructure:"github_token"`
	GithubOwner     string `mapstructure:"github_owner"`
	GithubRepo      string `mapstructure:"github_repo"`
}

var prereleaseLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*$`)

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ManifestFile:    "pyproject.toml",
		VersionFileName: "version.txt",
		PrereleaseLabel: "dev",
		StateDir:        ".fistbump-state",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ManifestFile == "" {
		return fmt.Errorf("manifest_file cannot be empty")
	}
	if strings.ContainsAny(c.ManifestFile, "/\\") {
		return fmt.Errorf("manifest_file must be a bare file name at the repository root")
	}
	if c.VersionFileName == "" {
		return fmt.Errorf("version_file_name cannot be empty")
	}
	if strings.ContainsAny(c.VersionFileName, "/\\") {
		return fmt.Errorf("version_file_name must be a bare file name")
	}
	if !prereleaseLabelRegex.MatchString(c.PrereleaseLabel) {
		return fmt.Errorf("invalid prerelease_label: %s", c.PrereleaseLabel)
	}
	if strings.Contains(c.StateDir, "..") {
		return fmt.Errorf("state_dir contains invalid path traversal")
	}
	// GitHub settings are optional - only validate when a token is provided
	if c.GithubToken != "" {
		if err := ValidateGitHubToken(c.GithubToken); err != nil {
			return fmt.Errorf("invalid github_token: %w", err)
		}
		if err := ValidateGitHubOwnerRepo(c.GithubOwner, c.GithubRepo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	}
	return nil
}

// ValidateForRelease validates that the GitHub settings needed by release
// creation are present.
func (c *Config) ValidateForRelease() error {
	if c.GithubToken == "" {
		return fmt.Errorf("github_token is required for release creation")
	}
	return c.Validate()
}

// ValidateGitHubToken validates GitHub token format (exported for reuse)
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if len(token) < 40 {
		return fmt.Errorf("token too short: expected at least 40 characters")
	}
	classicPAT := regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	fineGrainedPAT := regexp.MustCompile(`^github_pat_[a-zA-Z0-9_]{82}$`)
	appToken := regexp.MustCompile(`^ghs_[a-zA-Z0-9]{36}$`)
	oauthToken := regexp.MustCompile(`^gho_[a-zA-Z0-9]{36}$`)
	if !classicPAT.MatchString(token) &&
		!fineGrainedPAT.MatchString(token) &&
		!appToken.MatchString(token) &&
		!oauthToken.MatchString(token) {
		return fmt.Errorf("invalid token format")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".fistbump")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("FISTBUMP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// BindEnv allows multiple env vars - they are checked in order
	if err := viper.BindEnv("github_token", "GITHUB_TOKEN", "FISTBUMP_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := viper.BindEnv("github_owner", "GITHUB_OWNER", "FISTBUMP_GITHUB_OWNER"); err != nil {
		return nil, fmt.Errorf("failed to bind github_owner env: %w", err)
	}
	if err := viper.BindEnv("github_repo", "GITHUB_REPO", "FISTBUMP_GITHUB_REPO"); err != nil {
		return nil, fmt.Errorf("failed to bind github_repo env: %w", err)
	}
	defaults := DefaultConfig()
	viper.SetDefault("manifest_file", defaults.ManifestFile)
	viper.SetDefault("version_file_name", defaults.VersionFileName)
	viper.SetDefault("prerelease_label", defaults.PrereleaseLabel)
	viper.SetDefault("state_dir", defaults.StateDir)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
