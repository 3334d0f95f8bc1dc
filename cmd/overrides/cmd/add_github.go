package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addGitHubCmd = &cobra.Command{
	Use:   "github <url>",
	Short: "Add an override for a GitHub repository",
	Long: `Add an override for a GitHub repository.

The repository is pinned to a revision with nix-prefetch-git. The url is either
https://github.com/<owner>/<repo>.git or the <owner>/<repo> shorthand.`,
	Example: `% overrides add github https://github.com/haskell-beam/beam.git --rev v0.9.0.0 --name beam-core`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		acq, err := env.acquirer(cmd).AddGitHub(ctx, args[0],
			overridesFlags.add.rev, overridesFlags.add.name, overridesFlags.add.flags...)
		warnIgnoredFlags(cmd, acq.Project, acq.Ignored)
		if err != nil {
			wrapFatalln(fmt.Sprintf("add repository %s", args[0]), err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s override for %s@%s\n", acq.Kind, acq.Project, acq.Version)
	},
}

func init() {
	addBuildFlagsFlag(addGitHubCmd)
	addRevFlag(addGitHubCmd)
	addProjectNameFlag(addGitHubCmd)
	addCmd.AddCommand(addGitHubCmd)
}
