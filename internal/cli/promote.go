package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackwell-systems/orb-promote/internal/config"
	"github.com/blackwell-systems/orb-promote/internal/publisher"
	"github.com/blackwell-systems/orb-promote/internal/runner"
)

var promoteForce bool

var promoteCmd = &cobra.Command{
	Use:   "promote <orb-name> <sem-ver> [force-marker]",
	Short: "Promote an orb version to the registry",
	Long: `Run the full promotion pipeline: encode sources, pack and validate the
manifest, reconcile the v<sem-ver> tag against the remote, publish, and
remove the manifest.

If the version tag already exists the run aborts unless force mode is on.
Force mode is enabled by --force or by any non-empty third argument; the
marker's value is ignored.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration (Viper resolves behind the scenes)
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		req := publisher.Request{
			OrbName: args[0],
			SemVer:  args[1],
			Force:   forceRequested(args, promoteForce),
		}

		color.Cyan("Promoting %s@%s...", req.OrbName, req.SemVer)
		if req.Force {
			color.Yellow("⚠ Force mode: an existing %s%s tag will be replaced", cfg.TagPrefix, req.SemVer)
		}

		p := publisher.New(cfg, runner.ExecRunner{}, os.Stdout)
		if err := p.Run(req); err != nil {
			color.Red("✗ Promotion failed: %v", err)
			return err
		}

		color.Green("✓ Promoted %s@%s", req.OrbName, req.SemVer)
		return nil
	},
}

// forceRequested enables force mode from the flag or from the presence of a
// non-empty third positional argument, whatever its value.
func forceRequested(args []string, flag bool) bool {
	if flag {
		return true
	}
	return len(args) >= 3 && args[2] != ""
}

func init() {
	// Define flags
	promoteCmd.Flags().BoolVarP(&promoteForce, "force", "f", false, "replace an existing version tag")
	promoteCmd.Flags().String("remote", "", "git remote to push tags to")
	promoteCmd.Flags().String("source-dir", "", "orb source directory to pack")

	// Bind flags to viper
	viper.BindPFlag("remote", promoteCmd.Flags().Lookup("remote"))
	viper.BindPFlag("source-dir", promoteCmd.Flags().Lookup("source-dir"))
}
