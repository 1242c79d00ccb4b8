package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkgin/pkg/pkgin"
)

type depsFunc func(pm *pkgin.PackageManager, ctx context.Context, pkg string) ([]pkgin.Package, error)

func newDepsCmd(use, short string, fn depsFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [package]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := fn(newManager(cmd), cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), packages, func(w io.Writer) { printPackages(w, packages) })
		},
	}
}

var showDepsCmd = newDepsCmd(pkgin.VerbShowDeps, "Display direct dependencies",
	(*pkgin.PackageManager).ShowDeps)

var showFullDepsCmd = newDepsCmd(pkgin.VerbShowFullDeps, "Display dependencies recursively",
	(*pkgin.PackageManager).ShowFullDeps)

var showRevDepsCmd = newDepsCmd(pkgin.VerbShowRevDeps, "Display reverse dependencies recursively",
	(*pkgin.PackageManager).ShowRevDeps)

type filesFunc func(pm *pkgin.PackageManager, ctx context.Context, pkg string) ([]string, error)

func newFilesCmd(use, short string, fn filesFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [package]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := fn(newManager(cmd), cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), files, func(w io.Writer) {
				for _, f := range files {
					fmt.Fprintln(w, f)
				}
			})
		},
	}
}

var providesCmd = newFilesCmd(pkgin.VerbProvides, "Show what a package provides",
	(*pkgin.PackageManager).Provides)

var requiresCmd = newFilesCmd(pkgin.VerbRequires, "Show what a package requires",
	(*pkgin.PackageManager).Requires)
