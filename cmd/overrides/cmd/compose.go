package cmd

import (
	"context"
	"errors"

	"github.com/oneconcern/overrides/pkg/compose"
	"github.com/oneconcern/overrides/pkg/model"
	"github.com/oneconcern/overrides/pkg/nixexpr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Compose all overrides into a Nix overlay",
	Long: `Compose all stored overrides into a single Nix overlay.

Build expressions are layered first, then GitHub sources: a project with both kinds of override
is built from its GitHub source. Flags tagged on a project are applied to its derivation.

Overrides which cannot be read or parsed are left out with a warning.`,
	Example: `% overrides compose --out nix/overrides.nix`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		env, err := newCliEnv()
		if err != nil {
			wrapFatalln("create stores", err)
			return
		}
		overlay, err := composeOverlay(ctx, env)
		if err != nil {
			wrapFatalln("compose overrides", err)
			return
		}
		if overridesFlags.compose.out == "" {
			_, err = cmd.OutOrStdout().Write(overlay)
		} else {
			err = afero.WriteFile(appFs, overridesFlags.compose.out, overlay, 0o644)
		}
		if err != nil {
			wrapFatalln("write overlay", err)
			return
		}
	},
}

// composeOverlay renders the composed overrides. Records left out are reported by
// the engine, but a store failure aborts.
func composeOverlay(ctx context.Context, env *cliEnv) ([]byte, error) {
	opts := []compose.Option{compose.WithLogger(env.logger)}
	if !overridesFlags.compose.noFlags {
		opts = append(opts, compose.WithFlags(env.options))
	}
	override, err := compose.New(env.overrides, nixexpr.Builder{}, opts...).Compose(ctx)
	for _, e := range multierr.Errors(err) {
		if errors.Is(e, model.ErrStoreIO) {
			return nil, e
		}
	}

	set, err := override(compose.PackageSet{}, compose.PackageSet{})
	for _, e := range multierr.Errors(err) {
		env.logger.Warn("override left out", zap.Error(e))
	}

	return nixexpr.Render(set)
}

func init() {
	addComposeOutFlag(composeCmd)
	addNoFlagsFlag(composeCmd)
	rootCmd.AddCommand(composeCmd)
}
