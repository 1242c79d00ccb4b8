package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/pkgin/pkg/pkgin"
)

// Config holds gopkgin configuration
type Config struct {
	Binary      string        `yaml:"binary"`
	DefaultArgs []string      `yaml:"default_args,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	Env         []string      `yaml:"env,omitempty"`
	Debug       bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Binary:      getDefaultBinary(),
		DefaultArgs: append([]string(nil), pkgin.DefaultArgs...),
		Debug:       false,
	}
}

// DefaultPath returns $HOME/.config/gopkgin/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gopkgin", "config.yaml"), nil
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// PkginConfig converts the file configuration into a package manager config
func (c *Config) PkginConfig(logger *log.Logger) *pkgin.Config {
	return &pkgin.Config{
		Binary:      c.Binary,
		DefaultArgs: c.DefaultArgs,
		Timeout:     c.Timeout,
		Env:         c.Env,
		Debug:       c.Debug,
		Logger:      logger,
	}
}

func getDefaultBinary() string {
	if path := os.Getenv("PKGIN_BINARY"); path != "" {
		return path
	}

	path, err := pkgin.DetectBinary()
	if err != nil {
		return pkgin.DefaultBinary
	}
	return path
}
