package cli

import (
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [package...]",
	Short: "Remove packages and the packages depending on them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Remove(cmd.Context(), args...)
	},
}

var keepCmd = &cobra.Command{
	Use:   "keep [package...]",
	Short: `Mark packages as "non auto-removable"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Keep(cmd.Context(), args...)
	},
}

var unkeepCmd = &cobra.Command{
	Use:   "unkeep [package...]",
	Short: `Mark packages as "auto-removable"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Unkeep(cmd.Context(), args...)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the package cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Clean(cmd.Context())
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh the remote package database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newManager(cmd).Update(cmd.Context())
	},
}
