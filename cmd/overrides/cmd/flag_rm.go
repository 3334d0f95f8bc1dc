package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flagRmCmd = &cobra.Command{
	Use:   "rm <project>",
	Short: "Untag a project from every flag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		if err := env.options.RemoveAllFlags(ctx, args[0]); err != nil {
			wrapFatalln(fmt.Sprintf("untag project %s", args[0]), err)
			return
		}
	},
}

func init() {
	flagCmd.AddCommand(flagRmCmd)
}
