// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		store    string
		index    string
		logLevel string
	}
	add struct {
		flags []string
		rev   string
		name  string
	}
	output struct {
		format string
	}
	compose struct {
		out     string
		noFlags bool
	}
}

var overridesFlags = flagsT{}

func addStoreFlag(cmd *cobra.Command) string {
	store := "store"
	cmd.PersistentFlags().StringVar(&overridesFlags.root.store, store, "",
		`The directory holding the overrides (defaults to ".overrides")`)
	return store
}

func addIndexFlag(cmd *cobra.Command) string {
	index := "index"
	cmd.PersistentFlags().StringVar(&overridesFlags.root.index, index, "",
		"The package index archive (defaults to the index downloaded by cabal update)")
	return index
}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "loglevel"
	cmd.PersistentFlags().StringVar(&overridesFlags.root.logLevel, logLevel, "",
		`The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug (defaults to "warn")`)
	return logLevel
}

func addBuildFlagsFlag(cmd *cobra.Command) string {
	flag := "flag"
	cmd.Flags().StringSliceVar(&overridesFlags.add.flags, flag, nil,
		fmt.Sprintf("Build flags to apply to the project. Recognized flags: %s", strings.Join(model.FlagNames(), ", ")))
	return flag
}

func addRevFlag(cmd *cobra.Command) string {
	rev := "rev"
	cmd.Flags().StringVar(&overridesFlags.add.rev, rev, "", "The git revision to pin (defaults to the head of the default branch)")
	return rev
}

func addProjectNameFlag(cmd *cobra.Command) string {
	name := "name"
	cmd.Flags().StringVar(&overridesFlags.add.name, name, "", "The project name (defaults to the repository name)")
	return name
}

func addOutputFlag(cmd *cobra.Command) string {
	output := "output"
	cmd.Flags().StringVarP(&overridesFlags.output.format, output, "o", "table", "Output format: table, yaml or json")
	return output
}

func addComposeOutFlag(cmd *cobra.Command) string {
	out := "out"
	cmd.Flags().StringVar(&overridesFlags.compose.out, out, "", "Write the overlay to this file instead of stdout")
	return out
}

func addNoFlagsFlag(cmd *cobra.Command) string {
	noFlags := "no-flags"
	cmd.Flags().BoolVar(&overridesFlags.compose.noFlags, noFlags, false, "Do not apply build flags to the overrides")
	return noFlags
}
