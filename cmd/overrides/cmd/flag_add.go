package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flagAddCmd = &cobra.Command{
	Use:     "add <project> <flag> [<flag>...]",
	Short:   "Tag a project with some flags",
	Long:    "Tag a project with some flags. Unrecognized flags are ignored with a warning.",
	Example: `% overrides flag add beam-core relax-dependency-bounds skip-tests`,
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		project := args[0]
		ignored, err := env.options.AddFlags(ctx, project, args[1:]...)
		warnIgnoredFlags(cmd, project, ignored)
		if err != nil {
			wrapFatalln(fmt.Sprintf("tag project %s", project), err)
			return
		}
	},
}

func init() {
	flagCmd.AddCommand(flagAddCmd)
}
