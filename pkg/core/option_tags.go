package core

import (
	"bufio"
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/oneconcern/overrides/pkg/storage"
	"go.uber.org/zap"
)

// OptionTagStore persists build flags per project.
//
// Each recognized flag has an option file listing the tagged projects, one per line.
type OptionTagStore struct {
	store storage.Store
	Settings
}

// NewOptionTagStore builds an option tag store on top of some storage
func NewOptionTagStore(store storage.Store, opts ...Option) *OptionTagStore {
	return &OptionTagStore{
		store:    store,
		Settings: settingsWithDefaults(opts),
	}
}

// AddFlags tags a project with some flags.
//
// A project appears at most once in each option file. Unrecognized flags are skipped
// with a warning and returned: they never fail the operation.
func (s *OptionTagStore) AddFlags(ctx context.Context, project string, flags ...string) ([]string, error) {
	if err := model.ValidateProject(project); err != nil {
		return nil, err
	}
	var ignored []string
	for _, name := range flags {
		flag := model.Flag(name)
		if !flag.Recognized() {
			s.logger.Warn("ignoring flag",
				zap.Error(model.NewProjectError(project, model.ErrUnrecognizedOption).WithFlag(flag)),
				zap.Strings("recognized", model.FlagNames()),
			)
			ignored = append(ignored, name)
			continue
		}
		lines, err := s.readLines(ctx, flag)
		if err != nil {
			return ignored, model.NewProjectError(project, err).WithFlag(flag)
		}
		lines = append(withoutLine(lines, project), project)
		if err := s.writeLines(ctx, flag, lines); err != nil {
			return ignored, model.NewProjectError(project, err).WithFlag(flag)
		}
		s.logger.Debug("tagged project", zap.String("project", project), zap.Stringer("flag", flag))
	}
	return ignored, nil
}

// RemoveAllFlags removes a project from every option file.
//
// Removing an untagged project is not an error.
func (s *OptionTagStore) RemoveAllFlags(ctx context.Context, project string) error {
	for _, flag := range model.RecognizedFlags {
		lines, err := s.readLines(ctx, flag)
		if err != nil {
			return model.NewProjectError(project, err).WithFlag(flag)
		}
		kept := withoutLine(lines, project)
		if len(kept) == len(lines) {
			continue
		}
		if err := s.writeLines(ctx, flag, kept); err != nil {
			return model.NewProjectError(project, err).WithFlag(flag)
		}
		s.logger.Debug("untagged project", zap.String("project", project), zap.Stringer("flag", flag))
	}
	return nil
}

// ListFlag returns the projects tagged with a flag, sorted
func (s *OptionTagStore) ListFlag(ctx context.Context, name string) ([]string, error) {
	flag := model.Flag(name)
	if !flag.Recognized() {
		return nil, model.ErrUnrecognizedOption.Wrapf(name)
	}
	lines, err := s.readLines(ctx, flag)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(lines))
	projects := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		projects = append(projects, line)
	}
	sort.Strings(projects)
	return projects, nil
}

// FlagsFor returns the flags a project is tagged with, in the order of model.RecognizedFlags
func (s *OptionTagStore) FlagsFor(ctx context.Context, project string) ([]model.Flag, error) {
	var flags []model.Flag
	for _, flag := range model.RecognizedFlags {
		lines, err := s.readLines(ctx, flag)
		if err != nil {
			return nil, model.NewProjectError(project, err).WithFlag(flag)
		}
		if len(withoutLine(lines, project)) != len(lines) {
			flags = append(flags, flag)
		}
	}
	return flags, nil
}

func (s *OptionTagStore) readLines(ctx context.Context, flag model.Flag) ([]string, error) {
	key := model.GetPathToOption(flag)
	has, err := s.store.Has(ctx, key)
	if err != nil {
		return nil, model.ErrStoreIO.Wrap(err)
	}
	if !has {
		return nil, nil
	}
	content, err := storage.GetBytes(ctx, s.store, key)
	if err != nil {
		return nil, model.ErrStoreIO.Wrap(err)
	}
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, model.ErrStoreIO.Wrap(err)
	}
	return lines, nil
}

func (s *OptionTagStore) writeLines(ctx context.Context, flag model.Flag, lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := storage.PutBytes(ctx, s.store, model.GetPathToOption(flag), buf.Bytes()); err != nil {
		return model.ErrStoreIO.Wrap(err)
	}
	return nil
}

// withoutLine drops every line equal to the project: matching is on the whole
// line, so that removing "dom" leaves "reflex-dom" alone.
func withoutLine(lines []string, project string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != project {
			kept = append(kept, line)
		}
	}
	return kept
}
