package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/orb-promote/internal/config"
	"github.com/blackwell-systems/orb-promote/internal/encode"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode source scripts into .b64 sibling files",
	Long: `Run the encoding stage on its own: every *.py file under the working
tree and every regular file under the scripts directory gets a base64
sibling file, skipping virtualenv directories and already-encoded files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		color.Cyan("Encoding source files...")

		res, err := encode.Run(encode.Options{
			Root:       ".",
			ScriptsDir: cfg.ScriptsDir,
			VenvDir:    cfg.VenvDir,
		})
		if err != nil {
			color.Red("✗ Encoding failed: %v", err)
			return err
		}

		color.Green("✓ Encoded %d source files, %d script files", res.SourceEncoded, res.ScriptsEncoded)
		return nil
	},
}
