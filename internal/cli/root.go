package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/pkgin/pkg/core"
	"github.com/arc-language/pkgin/pkg/pkgin"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	cfgFile string
	binary  string
	debug   bool
	format  string
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gopkgin",
	Short: "Structured front-end for pkgin",
	Long: `gopkgin - structured front-end for pkgin

Runs the NetBSD binary package manager and reports its results as
plain text or YAML.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if format != formatText && format != formatYAML {
			return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatYAML)
		}
		return nil
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gopkgin/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&binary, "binary", "", "path to the pkgin executable")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", formatText, "output format (text, yaml)")

	// Add commands
	rootCmd.AddCommand(installCmd, importCmd, upgradeCmd, fullUpgradeCmd, autoremoveCmd)
	rootCmd.AddCommand(removeCmd, keepCmd, unkeepCmd, cleanCmd, updateCmd)
	rootCmd.AddCommand(listCmd, availCmd, showKeepCmd, searchCmd, installedCmd)
	rootCmd.AddCommand(showDepsCmd, showFullDepsCmd, showRevDepsCmd, providesCmd, requiresCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if binary != "" {
		config.Binary = binary
	}
	if debug {
		config.Debug = true
	}
}

func newManager(cmd *cobra.Command) *pkgin.PackageManager {
	var logger *log.Logger
	if config.Debug {
		logger = log.New(cmd.ErrOrStderr(), "[PKGIN] ", log.LstdFlags)
	}
	return pkgin.NewPackageManager(config.PkginConfig(logger))
}

// emit writes v as YAML, or calls text when the text format is selected
func emit(w io.Writer, v interface{}, text func(w io.Writer)) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	text(w)
	return nil
}

func printPackages(w io.Writer, packages []pkgin.Package) {
	for _, p := range packages {
		if p.Description != "" {
			fmt.Fprintf(w, "%-32s %s\n", p.String(), p.Description)
		} else {
			fmt.Fprintln(w, p.String())
		}
	}
}
