package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkgin/pkg/pkgin"
)

var errNotInstalled = errors.New("package is not installed")

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		packages, err := newManager(cmd).List(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), packages, func(w io.Writer) { printPackages(w, packages) })
	},
}

var availCmd = &cobra.Command{
	Use:   "avail",
	Short: "List available packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		packages, err := newManager(cmd).Avail(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), packages, func(w io.Writer) { printPackages(w, packages) })
	},
}

var showKeepCmd = &cobra.Command{
	Use:   "show-keep",
	Short: `Display "non auto-removable" packages`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		packages, err := newManager(cmd).ShowKeep(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), packages, func(w io.Writer) { printPackages(w, packages) })
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search for a package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packages, err := newManager(cmd).Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), packages, func(w io.Writer) { printSearch(w, packages) })
	},
}

var installedCmd = &cobra.Command{
	Use:   "installed [package]",
	Short: "Report whether a package is installed",
	Long:  `Exits with status 0 when the package is installed and 1 otherwise.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := newManager(cmd).Installed(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", args[0], errNotInstalled)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is installed\n", args[0])
		return nil
	},
}

func printSearch(w io.Writer, packages []pkgin.Package) {
	for _, p := range packages {
		state := "unknown"
		if p.State != nil {
			state = p.State.String()
		}
		fmt.Fprintf(w, "%-32s %-9s %s\n", p.String(), state, p.Description)
	}
}
