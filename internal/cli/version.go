package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("orb-promote version %s\n", cmd.Root().Version)
		fmt.Println("\nExternal collaborators (must be on PATH):")
		fmt.Println("  circleci: orb pack / orb validate / orb publish")
		fmt.Println("  git:      tag / push")
	},
}
