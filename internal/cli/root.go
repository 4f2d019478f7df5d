// Package cli defines the orb-promote command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orb-promote",
	Short: "Package, tag, and publish CircleCI orbs",
	Long: `orb-promote packages an orb source tree, reconciles its version tag
against the git remote, and publishes the packed orb to the CircleCI
registry.

All registry and repository traffic is delegated to the circleci and git
CLIs, which must be on PATH.`,
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
