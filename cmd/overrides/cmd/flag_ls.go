package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flagLsCmd = &cobra.Command{
	Use:     "ls <flag>",
	Aliases: []string{"list"},
	Short:   "List the projects tagged with a flag",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		projects, err := env.options.ListFlag(ctx, args[0])
		if err != nil {
			wrapFatalln(fmt.Sprintf("list flag %s", args[0]), err)
			return
		}
		for _, project := range projects {
			fmt.Fprintln(cmd.OutOrStdout(), project)
		}
	},
}

func init() {
	flagCmd.AddCommand(flagLsCmd)
}
