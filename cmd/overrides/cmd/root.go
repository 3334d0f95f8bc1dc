// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "overrides",
	Short: "Overrides manages the package overrides of a Haskell project built with Nix",
	Long: `Overrides manages the package overrides of a Haskell project built with Nix.

Overrides are stored in a project-local directory:
  - expr-overrides/<project>.nix holds build expressions generated by cabal2nix from the package index
  - descriptor-overrides/<project>.json holds GitHub sources pinned by nix-prefetch-git
  - options/<flag> lists the projects built with some flag

The compose command merges all stored overrides into a single Nix overlay.
`,
	SilenceUsage: true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addStoreFlag(rootCmd)
	addIndexFlag(rootCmd)
	addLogLevelFlag(rootCmd)
}
