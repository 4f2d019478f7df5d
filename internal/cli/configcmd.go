package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/orb-promote/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show resolved configuration and its sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Display()
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}
