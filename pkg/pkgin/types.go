package pkgin

import (
	"context"
	"io"
	"log"
	"time"
)

// State is the comparison marker printed by pkgin search
type State int

// An unrecognised marker leaves Package.State nil.
const (
	// StateInstalled: the installed version equals the available one ("=")
	StateInstalled State = iota
	// StateOutdated: the installed version is older than the available one ("<")
	StateOutdated
	// StateGreater: the installed version is newer than the available one (">")
	StateGreater
)

// States maps search markers to states
var States = map[string]State{
	"=": StateInstalled,
	"<": StateOutdated,
	">": StateGreater,
}

func (s State) String() string {
	switch s {
	case StateInstalled:
		return "installed"
	case StateOutdated:
		return "outdated"
	case StateGreater:
		return "greater"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the state by name
func (s State) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Config configures the pkgin package manager
type Config struct {
	Binary      string        // Path to the pkgin executable (detected if empty)
	DefaultArgs []string      // Prefix for side-effect verbs (default: -V -y)
	Timeout     time.Duration // Per-invocation timeout, zero blocks until exit
	Env         []string      // Extra environment for the child process
	Debug       bool          // Enable debug logging
	Logger      *log.Logger   // Custom logger
	Runner      Runner        // Process runner (defaults to exec)
}

// Runner spawns the pkgin binary once and returns its captured stdout.
// A non-zero exit must be reported as a *CommandError.
type Runner interface {
	Run(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error)
}

// PackageManager drives the pkgin binary
type PackageManager struct {
	runner Runner
	config *Config
	logger *log.Logger
}

// Package is a name-version pair plus the fields some verbs report
type Package struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
	State       *State `yaml:"state,omitempty"` // only set by Search; nil when the marker is unrecognised
}

// String returns the package token form name-version
func (p Package) String() string {
	return p.Name + "-" + p.Version
}

// Transaction summarises an install, import or autoremove run
type Transaction struct {
	Packages     []Package `yaml:"packages"`
	DownloadSize string    `yaml:"download_size,omitempty"` // raw token, e.g. "1.2M"
	InstallSize  string    `yaml:"install_size,omitempty"`
	Noop         bool      `yaml:"noop"` // marker line absent: nothing to do
}

// Upgrade summarises an upgrade or full-upgrade run
type Upgrade struct {
	Upgraded     []Package `yaml:"packages_upgraded,omitempty"`
	Installed    []Package `yaml:"packages_installed,omitempty"`
	DownloadSize string    `yaml:"download_size,omitempty"`
	InstallSize  string    `yaml:"install_size,omitempty"`
	Noop         bool      `yaml:"noop"`
}

// ExportEntry is one line of pkgin export: a pkgsrc location such as "www/curl"
type ExportEntry struct {
	Location    string `yaml:"location"`
	PackageName string `yaml:"package_name"`
}
