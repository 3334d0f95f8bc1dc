package cmd

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Commands to add overrides",
	Long: `Commands to add overrides.

An override is either a build expression generated from the package index ("add hackage"),
or a pinned GitHub source ("add github"). Adding an override replaces any previous override
of the same project.`,
}

func init() {
	rootCmd.AddCommand(addCmd)
}
