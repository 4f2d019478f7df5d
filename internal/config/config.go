// Package config provides configuration management for the orb-promote CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config structs.
// Configuration sources are resolved in this order: flags > env > config file > defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the explicit configuration struct
// This is what the rest of the codebase sees
type Config struct {
	SourceDir    string
	ScriptsDir   string
	ManifestPath string
	Remote       string
	TagPrefix    string
	VenvDir      string
	Bins         BinConfig
}

// BinConfig names the external CLIs the tool delegates to
type BinConfig struct {
	CircleCI string
	Git      string
}

// Init initializes viper with defaults and config file paths
func Init() error {
	// Set config file name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config file search paths
	viper.AddConfigPath("$HOME/.orb-promote")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("source-dir", "src")
	viper.SetDefault("scripts-dir", "src/scripts")
	viper.SetDefault("manifest-path", "tmp.yml")
	viper.SetDefault("remote", "origin")
	viper.SetDefault("tag-prefix", "v")
	viper.SetDefault("venv-dir", "venv")
	viper.SetDefault("circleci-bin", "circleci")
	viper.SetDefault("git-bin", "git")

	// Bind environment variables with prefix; hyphenated keys map to
	// underscored env names (source-dir -> ORB_PROMOTE_SOURCE_DIR)
	viper.SetEnvPrefix("ORB_PROMOTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns explicit Config
func Load() (*Config, error) {
	cfg := &Config{
		SourceDir:    viper.GetString("source-dir"),
		ScriptsDir:   viper.GetString("scripts-dir"),
		ManifestPath: viper.GetString("manifest-path"),
		Remote:       viper.GetString("remote"),
		TagPrefix:    viper.GetString("tag-prefix"),
		VenvDir:      viper.GetString("venv-dir"),
		Bins: BinConfig{
			CircleCI: viper.GetString("circleci-bin"),
			Git:      viper.GetString("git-bin"),
		},
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane. TagPrefix and VenvDir may be empty: an
// empty prefix tags bare versions (1.2.3 instead of v1.2.3) and an empty
// venv-dir disables the directory exclusion during encoding.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source-dir must not be empty")
	}

	if c.ScriptsDir == "" {
		return fmt.Errorf("scripts-dir must not be empty")
	}

	if c.ManifestPath == "" {
		return fmt.Errorf("manifest-path must not be empty")
	}

	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}

	if c.Bins.CircleCI == "" {
		return fmt.Errorf("circleci-bin must not be empty")
	}

	if c.Bins.Git == "" {
		return fmt.Errorf("git-bin must not be empty")
	}

	return nil
}

// Display shows current config (for orb-promote config get)
func Display() (string, error) {
	cfg, err := Load()
	if err != nil {
		return "", err
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = "(not found)"
	}

	return fmt.Sprintf(`Configuration:
  source-dir:         %s
  scripts-dir:        %s
  manifest-path:      %s
  remote:             %s
  tag-prefix:         %s
  venv-dir:           %s

Binaries:
  circleci:           %s
  git:                %s

Sources:
  Config file:        %s
  Environment:        ORB_PROMOTE_*
  Flags:              (per command)
`,
		cfg.SourceDir,
		cfg.ScriptsDir,
		cfg.ManifestPath,
		cfg.Remote,
		cfg.TagPrefix,
		cfg.VenvDir,
		cfg.Bins.CircleCI,
		cfg.Bins.Git,
		configFile,
	), nil
}
