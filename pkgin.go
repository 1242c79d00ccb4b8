// pkgin.go
package pkgin

import (
	"github.com/arc-language/pkgin/pkg/core"
	"github.com/arc-language/pkgin/pkg/pkgin"
)

// Re-export package manager types for convenience
type (
	Manager     = pkgin.PackageManager
	Config      = pkgin.Config
	Runner      = pkgin.Runner
	Package     = pkgin.Package
	State       = pkgin.State
	Transaction = pkgin.Transaction
	Upgrade     = pkgin.Upgrade
	ExportEntry = pkgin.ExportEntry
	// FileConfig is the YAML configuration read by the gopkgin command.
	FileConfig = core.Config
)

// Re-export search states
const (
	StateInstalled = pkgin.StateInstalled
	StateOutdated  = pkgin.StateOutdated
	StateGreater   = pkgin.StateGreater
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig().PkginConfig(nil)
}

// NewManager creates a client for the pkgin binary described by config.
// A nil config detects the binary and uses the default arguments.
func NewManager(config *Config) *Manager {
	return pkgin.NewPackageManager(config)
}

// LoadConfig reads a YAML configuration file, see core.LoadConfig
func LoadConfig(path string) (*Config, error) {
	cfg, err := core.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.PkginConfig(nil), nil
}

// ParsePackageToken splits a name-version token
func ParsePackageToken(token string) (Package, error) {
	return pkgin.ParsePackageToken(token)
}
