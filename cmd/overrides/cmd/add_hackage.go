package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addHackageCmd = &cobra.Command{
	Use:   "hackage <package>[-<version>]",
	Short: "Add an override for a package of the index",
	Long: `Add an override for a package of the package index.

The package description is looked up in the index archive, then turned into a build expression with cabal2nix.
When no version is given, the last entry found in the index is picked and a warning tells which version was used.`,
	Example: `% overrides add hackage beam-core-0.9.0.0 --flag relax-dependency-bounds
% overrides add hackage aeson`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		acq, err := env.acquirer(cmd).AddHackage(ctx, args[0], overridesFlags.add.flags...)
		warnIgnoredFlags(cmd, acq.Project, acq.Ignored)
		if err != nil {
			wrapFatalln(fmt.Sprintf("add package %s", args[0]), err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s override for %s-%s\n", acq.Kind, acq.Project, acq.Version)
	},
}

func init() {
	addBuildFlagsFlag(addHackageCmd)
	addCmd.AddCommand(addHackageCmd)
}
