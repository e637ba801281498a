// Package config resolves the tool's configuration once at the process
// boundary: persisted state file, then environment overrides. Components
// receive the resolved Config and never read the environment themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvVault  = "LIFEMEMORY_VAULT"
	EnvBinary = "OBSIDIAN_BIN"
)

// DefaultVaultPath is used until set-vault persists a location.
const DefaultVaultPath = "~/.openclaw/workspace"

// DefaultBinary is the external note-CLI binary.
const DefaultBinary = "obsidian"

// Config holds the resolved tool configuration.
type Config struct {
	VaultPath string `yaml:"vault_path"`
	Binary    string `yaml:"binary"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.VaultPath, validation.Required),
		validation.Field(&c.Binary, validation.Required),
	)
}

// StatePath returns the persisted config location under the XDG state
// directory.
func StatePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "lifememory", "config.yaml")
}

// Load reads the persisted config from statePath, returning defaults when
// the file does not exist.
func Load(statePath string) (*Config, error) {
	cfg := &Config{
		VaultPath: DefaultVaultPath,
		Binary:    DefaultBinary,
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.VaultPath == "" {
		cfg.VaultPath = DefaultVaultPath
	}
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	return cfg, nil
}

// Save persists the config to statePath, creating parent directories.
func Save(statePath string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(statePath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(statePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Resolve loads the persisted config and applies environment overrides.
// This is the single place override resolution happens.
func Resolve(statePath string) (*Config, error) {
	cfg, err := Load(statePath)
	if err != nil {
		return nil, err
	}
	if env := os.Getenv(EnvVault); env != "" {
		cfg.VaultPath = env
	}
	if env := os.Getenv(EnvBinary); env != "" {
		cfg.Binary = env
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory and returns
// an absolute path.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}
