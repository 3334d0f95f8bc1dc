package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <project>",
	Aliases: []string{"remove"},
	Short:   "Remove all overrides and flags of a project",
	Long: `Remove all overrides of a project, of any kind, and untag it from every flag.

Removing a project without overrides is not an error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		removal, err := env.acquirer(cmd).Remove(ctx, args[0])
		if err != nil {
			wrapFatalln(fmt.Sprintf("remove project %s", args[0]), err)
			return
		}
		if !removal.Any() {
			fmt.Fprintf(cmd.OutOrStdout(), "no override found for %s\n", args[0])
			return
		}
		for _, kind := range removal.Kinds() {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s override for %s\n", kind, args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
