package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/oneconcern/overrides/pkg/core"
	"github.com/oneconcern/overrides/pkg/dlogger"
	"github.com/oneconcern/overrides/pkg/fetch"
	"github.com/oneconcern/overrides/pkg/resolver"
	"github.com/oneconcern/overrides/pkg/storage"
	"github.com/oneconcern/overrides/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// used to patch over the file system and external tools during test
	appFs  afero.Fs = afero.NewOsFs()
	runner fetch.Runner
)

// cliEnv gathers the stores and collaborators used by commands
type cliEnv struct {
	logger    *zap.Logger
	store     storage.Store
	overrides *core.OverrideStore
	options   *core.OptionTagStore
}

func newCliEnv() (*cliEnv, error) {
	logger, err := dlogger.GetLogger(overridesFlags.root.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", overridesFlags.root.logLevel, err)
	}
	root := overridesFlags.root.store
	if root == "" {
		root = ".overrides"
	}
	store := storage.Instrument(nil, logger, localfs.New(afero.NewBasePathFs(appFs, root)))
	return &cliEnv{
		logger:    logger,
		store:     store,
		overrides: core.NewOverrideStore(store, core.WithLogger(logger)),
		options:   core.NewOptionTagStore(store, core.WithLogger(logger)),
	}, nil
}

func (e *cliEnv) runner() fetch.Runner {
	if runner != nil {
		return runner
	}
	return fetch.ExecRunner{Logger: e.logger}
}

// acquirer wires the resolver and external tools for acquisition commands
func (e *cliEnv) acquirer(cmd *cobra.Command) *core.Acquirer {
	warn := color.New(color.FgYellow)
	res := resolver.New(overridesFlags.root.index,
		resolver.WithFs(appFs),
		resolver.WithLogger(e.logger),
		resolver.WithAdvisor(func(s resolver.Selection) {
			_, _ = warn.Fprintf(cmd.ErrOrStderr(),
				"warning: no version specified for %s, picked %s (not necessarily the latest). Pin it with %s-%s\n",
				s.Name, s.Version, s.Name, s.Version)
		}),
	)
	cabal2nix, prefetchGit := "", ""
	if config != nil {
		cabal2nix, prefetchGit = config.Cabal2Nix, config.PrefetchGit
	}
	return &core.Acquirer{
		Overrides:  e.overrides,
		Options:    e.options,
		Resolver:   res,
		Generator:  fetch.NewExpressionGenerator(e.runner(), cabal2nix),
		Prefetcher: fetch.NewGitPrefetcher(e.runner(), prefetchGit),
		Logger:     e.logger,
	}
}

func warnIgnoredFlags(cmd *cobra.Command, project string, ignored []string) {
	for _, flag := range ignored {
		_, _ = color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: ignored unrecognized flag %q for %s\n", flag, project)
	}
}
