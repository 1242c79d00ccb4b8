package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkgin/pkg/pkgin"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install or upgrade packages",
	Long: `Install packages and their dependencies.

Examples:
  gopkgin install curl
  gopkgin install vim git-base
  gopkgin --format=yaml install nginx`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := newManager(cmd).Install(cmd.Context(), args...)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), tx, func(w io.Writer) { printTransaction(w, "installed", tx) })
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Install the packages listed in a file",
	Long: `Install and keep the packages listed in a pkgin export file.
Lists compressed with gzip (.gz), xz (.xz) or zstd (.zst) are accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := newManager(cmd).Import(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), tx, func(w io.Writer) { printTransaction(w, "installed", tx) })
	},
}

var autoremoveCmd = &cobra.Command{
	Use:   "autoremove",
	Short: "Remove orphan dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := newManager(cmd).Autoremove(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), tx, func(w io.Writer) { printTransaction(w, "removed", tx) })
	},
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade kept packages to their newer versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		up, err := newManager(cmd).Upgrade(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), up, func(w io.Writer) { printUpgrade(w, up) })
	},
}

var fullUpgradeCmd = &cobra.Command{
	Use:   "full-upgrade",
	Short: "Upgrade all packages to their newer versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		up, err := newManager(cmd).FullUpgrade(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), up, func(w io.Writer) { printUpgrade(w, up) })
	},
}

func printTransaction(w io.Writer, verb string, tx *pkgin.Transaction) {
	if tx.Noop {
		fmt.Fprintln(w, "Nothing to do.")
		return
	}
	fmt.Fprintf(w, "%d package(s) %s: %s\n", len(tx.Packages), verb, joinPackages(tx.Packages))
	if tx.DownloadSize != "" {
		fmt.Fprintf(w, "Download size: %s\n", tx.DownloadSize)
	}
	if tx.InstallSize != "" {
		fmt.Fprintf(w, "Install size:  %s\n", tx.InstallSize)
	}
}

func printUpgrade(w io.Writer, up *pkgin.Upgrade) {
	if up.Noop {
		fmt.Fprintln(w, "Nothing to upgrade.")
		return
	}
	if len(up.Upgraded) > 0 {
		fmt.Fprintf(w, "%d package(s) upgraded: %s\n", len(up.Upgraded), joinPackages(up.Upgraded))
	}
	if len(up.Installed) > 0 {
		fmt.Fprintf(w, "%d package(s) installed: %s\n", len(up.Installed), joinPackages(up.Installed))
	}
	if up.DownloadSize != "" {
		fmt.Fprintf(w, "Download size: %s\n", up.DownloadSize)
	}
	if up.InstallSize != "" {
		fmt.Fprintf(w, "Install size:  %s\n", up.InstallSize)
	}
}

func joinPackages(packages []pkgin.Package) string {
	tokens := make([]string, len(packages))
	for i, p := range packages {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, " ")
}
