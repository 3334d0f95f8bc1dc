package cmd

import (
	"context"
	"sort"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List overridden projects",
	Long: `List overridden projects, with the kinds of overrides and the flags of each project.

Projects are sorted by name.`,
	Example: `% overrides ls
beam-core , expression , relax-dependency-bounds
servant , descriptor ,`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		rows, err := listProjects(ctx, env)
		if err != nil {
			wrapFatalln("list projects", err)
			return
		}
		if err := writeFormatted(cmd.OutOrStdout(), overridesFlags.output.format, rows); err != nil {
			wrapFatalln("write project list", err)
			return
		}
	},
}

func listProjects(ctx context.Context, env *cliEnv) ([]projectRow, error) {
	projects, err := env.overrides.Projects(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]projectRow, 0, len(projects))
	for project, kinds := range projects {
		flags, err := env.options.FlagsFor(ctx, project)
		if err != nil {
			return nil, err
		}
		rows = append(rows, projectRow{
			Project: project,
			Kinds:   kindNames(kinds),
			Flags:   flagNames(flags),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Project < rows[j].Project })
	return rows, nil
}

func kindNames(kinds []model.Kind) []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

func flagNames(flags []model.Flag) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.String())
	}
	return names
}

func init() {
	addOutputFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
