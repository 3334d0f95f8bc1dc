package compose

import (
	"context"
	"iter"

	"github.com/oneconcern/overrides/pkg/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder turns records into derivations. This is the build pipeline collaborator
type Builder interface {
	// CallExpression builds a project from a stored build expression
	CallExpression(self, super PackageSet, project string, expression []byte) (Derivation, error)

	// CallGitHub builds a project from its GitHub sources
	CallGitHub(self, super PackageSet, project string, src model.GitHubSource) (Derivation, error)

	// ApplyFlag alters a derivation according to a build flag
	ApplyFlag(d Derivation, flag model.Flag) (Derivation, error)
}

// RecordLister enumerates the override records of a kind
type RecordLister interface {
	ListAll(ctx context.Context, kind model.Kind) iter.Seq2[model.Record, error]
}

// FlagLister tells which flags a project carries
type FlagLister interface {
	FlagsFor(ctx context.Context, project string) ([]model.Flag, error)
}

// Engine composes all stored records into one override
type Engine struct {
	records RecordLister
	builder Builder
	flags   FlagLister
	logger  *zap.Logger
}

// Option configures the engine
type Option func(*Engine)

// WithFlags applies the flags tagged on each project to its derivation
func WithFlags(flags FlagLister) Option {
	return func(e *Engine) {
		e.flags = flags
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New composition engine
func New(records RecordLister, builder Builder, opts ...Option) *Engine {
	e := &Engine{
		records: records,
		builder: builder,
		logger:  zap.NewNop(),
	}
	for _, apply := range opts {
		apply(e)
	}
	return e
}

// Compose all records currently stored into a single override.
//
// Records which cannot be read or parsed are left out: the returned override
// is always usable, and the error reports every project left out.
func (e *Engine) Compose(ctx context.Context) (Override, error) {
	chain, err := e.Chain(ctx)
	return chain.Override(), err
}

// Chain builds one partial override per record, expression records first then
// descriptor records, each kind in listing order.
func (e *Engine) Chain(ctx context.Context) (Chain, error) {
	var (
		chain Chain
		errs  error
	)
	for _, kind := range model.Kinds {
		for record, err := range e.records.ListAll(ctx, kind) {
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			partial, err := e.partial(ctx, record)
			if err != nil {
				e.logger.Warn("skipping override", zap.Error(err))
				errs = multierr.Append(errs, err)
				continue
			}
			chain = append(chain, partial)
		}
	}
	e.logger.Debug("composed overrides", zap.Strings("projects", chain.Projects()))
	return chain, errs
}

func (e *Engine) partial(ctx context.Context, record model.Record) (Partial, error) {
	project := record.Project
	var build func(self, super PackageSet) (Derivation, error)

	switch record.Kind {
	case model.KindExpression:
		expression := record.Content
		build = func(self, super PackageSet) (Derivation, error) {
			return e.builder.CallExpression(self, super, project, expression)
		}
	case model.KindDescriptor:
		desc, err := model.ParseGitDescriptor(record.Content)
		if err != nil {
			return Partial{}, model.NewProjectError(project, err).WithKind(record.Kind)
		}
		src, err := desc.Source()
		if err != nil {
			return Partial{}, model.NewProjectError(project, err).WithKind(record.Kind)
		}
		build = func(self, super PackageSet) (Derivation, error) {
			return e.builder.CallGitHub(self, super, project, src)
		}
	default:
		return Partial{}, model.NewProjectError(project, model.ErrMalformedRecord.Wrapf("unknown kind")).WithKind(record.Kind)
	}

	var flags []model.Flag
	if e.flags != nil {
		var err error
		if flags, err = e.flags.FlagsFor(ctx, project); err != nil {
			return Partial{}, err
		}
	}

	return Partial{
		Kind:    record.Kind,
		Project: project,
		Build: func(self, super PackageSet) (PackageSet, error) {
			d, err := build(self, super)
			if err != nil {
				return nil, err
			}
			for _, flag := range flags {
				if d, err = e.builder.ApplyFlag(d, flag); err != nil {
					return nil, err
				}
			}
			return PackageSet{project: d}, nil
		},
	}, nil
}
