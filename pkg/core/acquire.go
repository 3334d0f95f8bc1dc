package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/oneconcern/overrides/pkg/resolver"
	"go.uber.org/zap"
)

// PackageResolver finds the description of a package in an index
type PackageResolver interface {
	Resolve(ctx context.Context, pkg model.PackageID, fn func(resolver.Selection) error) error
}

// ExpressionGenerator turns a package description file into a build expression
type ExpressionGenerator interface {
	FromDescription(ctx context.Context, path string) ([]byte, error)
}

// GitPrefetcher pins a git revision, returning a descriptor record
type GitPrefetcher interface {
	Prefetch(ctx context.Context, url, rev string) ([]byte, error)
}

// Acquirer fetches new overrides and saves them with their flags
type Acquirer struct {
	Overrides  *OverrideStore
	Options    *OptionTagStore
	Resolver   PackageResolver
	Generator  ExpressionGenerator
	Prefetcher GitPrefetcher
	Logger     *zap.Logger
}

// Acquisition reports what was saved
type Acquisition struct {
	Project  string
	Kind     model.Kind
	Version  string
	Replaced []model.Kind
	Ignored  []string
}

func (a *Acquirer) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// AddHackage saves a build expression override for a package of the index.
//
// The identifier may carry a version, e.g. beam-core-0.9.0.0.
func (a *Acquirer) AddHackage(ctx context.Context, id string, flags ...string) (Acquisition, error) {
	pkg, err := model.ParsePackageID(id)
	if err != nil {
		return Acquisition{}, err
	}
	acq := Acquisition{Project: pkg.Name, Kind: model.KindExpression}

	var expression []byte
	err = a.Resolver.Resolve(ctx, pkg, func(s resolver.Selection) error {
		acq.Version = s.Version
		var e error
		expression, e = a.Generator.FromDescription(ctx, s.Path)
		return e
	})
	if err != nil {
		return acq, model.NewProjectError(pkg.Name, err)
	}
	return a.save(ctx, acq, expression, flags)
}

// AddGitHub saves a descriptor override for a GitHub repository.
//
// The source is either a full URL https://github.com/<owner>/<repo>.git or <owner>/<repo>.
// The project defaults to the repository name.
func (a *Acquirer) AddGitHub(ctx context.Context, source, rev, project string, flags ...string) (Acquisition, error) {
	url := GitHubURL(source)
	_, repo, err := model.ParseGitHubURL(url)
	if err != nil {
		return Acquisition{}, err
	}
	if project == "" {
		project = repo
	}
	if err := model.ValidateProject(project); err != nil {
		return Acquisition{}, err
	}
	acq := Acquisition{Project: project, Kind: model.KindDescriptor}

	content, err := a.Prefetcher.Prefetch(ctx, url, rev)
	if err != nil {
		return acq, model.NewProjectError(project, err)
	}
	desc, err := model.ParseGitDescriptor(content)
	if err != nil {
		return acq, model.NewProjectError(project, err).WithKind(model.KindDescriptor)
	}
	if _, err := desc.Source(); err != nil {
		return acq, model.NewProjectError(project, err).WithKind(model.KindDescriptor)
	}
	acq.Version = desc.Rev
	return a.save(ctx, acq, content, flags)
}

// save the record, dropping any record of another kind for the same project
func (a *Acquirer) save(ctx context.Context, acq Acquisition, content []byte, flags []string) (Acquisition, error) {
	for _, kind := range model.Kinds {
		if kind == acq.Kind {
			continue
		}
		has, err := a.Overrides.Has(ctx, kind, acq.Project)
		if err != nil {
			return acq, err
		}
		if !has {
			continue
		}
		if err := a.Overrides.store.Delete(ctx, model.GetPathToOverride(kind, acq.Project)); err != nil {
			return acq, storeIOError(acq.Project, kind, err)
		}
		acq.Replaced = append(acq.Replaced, kind)
		a.logger().Info("replaced existing override",
			zap.String("project", acq.Project),
			zap.Stringer("previous", kind),
			zap.Stringer("kind", acq.Kind),
		)
	}

	if err := a.Overrides.Put(ctx, acq.Kind, acq.Project, content); err != nil {
		return acq, err
	}
	if len(flags) > 0 && a.Options != nil {
		ignored, err := a.Options.AddFlags(ctx, acq.Project, flags...)
		acq.Ignored = ignored
		if err != nil {
			return acq, err
		}
	}
	a.logger().Info("saved override",
		zap.String("project", acq.Project),
		zap.Stringer("kind", acq.Kind),
		zap.String("version", acq.Version),
	)
	return acq, nil
}

// Remove every record and flag of a project
func (a *Acquirer) Remove(ctx context.Context, project string) (model.Removal, error) {
	removal, err := a.Overrides.Delete(ctx, project)
	if err != nil {
		return removal, err
	}
	if a.Options != nil {
		if err := a.Options.RemoveAllFlags(ctx, project); err != nil {
			return removal, err
		}
	}
	return removal, nil
}

// GitHubURL expands an <owner>/<repo> shorthand, a git@github.com:<owner>/<repo> address,
// or a GitHub URL without the .git suffix, to a clone URL.
//
// Sources which do not designate GitHub are returned untouched and fail validation later.
func GitHubURL(source string) string {
	const (
		github    = "https://github.com/"
		githubSSH = "git@github.com:"
	)
	switch {
	case strings.HasPrefix(source, github):
		source = strings.TrimPrefix(source, github)
	case strings.HasPrefix(source, githubSSH):
		source = strings.TrimPrefix(source, githubSSH)
	case strings.Contains(source, "://"), strings.ContainsAny(source, "@:"):
		return source
	}
	return fmt.Sprintf("%s%s.git", github, strings.TrimSuffix(strings.Trim(source, "/"), ".git"))
}
