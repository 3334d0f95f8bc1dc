package cmd

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/ghodss/yaml"
	"github.com/oneconcern/overrides/pkg/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <project>",
	Short: "Print the overrides of a project",
	Long: `Print the overrides stored for a project, followed by its flags.

With --output yaml, GitHub source descriptors are printed as YAML.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		project := args[0]
		header := color.New(color.Bold)
		var found bool
		for _, kind := range model.Kinds {
			has, err := env.overrides.Has(ctx, kind, project)
			if err != nil {
				wrapFatalln(fmt.Sprintf("look up project %s", project), err)
				return
			}
			if !has {
				continue
			}
			content, err := env.overrides.Get(ctx, kind, project)
			if err != nil {
				wrapFatalln(fmt.Sprintf("read project %s", project), err)
				return
			}
			found = true
			_, _ = header.Fprintf(cmd.OutOrStdout(), "# %s (%s)\n",
				model.GetPathToOverride(kind, project), units.HumanSize(float64(len(content))))

			if kind == model.KindDescriptor && overridesFlags.output.format == formatYAML {
				if content, err = yaml.JSONToYAML(content); err != nil {
					wrapFatalln(fmt.Sprintf("convert descriptor of %s", project), err)
					return
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(content))
		}
		if !found {
			wrapFatalln(fmt.Sprintf("no override found for %s", project), nil)
			return
		}
		flags, err := env.options.FlagsFor(ctx, project)
		if err != nil {
			wrapFatalln(fmt.Sprintf("read flags of project %s", project), err)
			return
		}
		for _, flag := range flags {
			_, _ = header.Fprintf(cmd.OutOrStdout(), "# flag: %s\n", flag)
		}
	},
}

func init() {
	addOutputFlag(showCmd)
	rootCmd.AddCommand(showCmd)
}
