package cmd

import (
	"fmt"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/spf13/cobra"
)

var flagCmd = &cobra.Command{
	Use:   "flag",
	Short: "Commands to manage the build flags of projects",
	Long: fmt.Sprintf(`Commands to manage the build flags of projects.

Flags alter how an overridden project is built. Recognized flags: %s.`, strings.Join(model.FlagNames(), ", ")),
}

func init() {
	rootCmd.AddCommand(flagCmd)
}
