// Package core implements the override and option tag stores, and the
// acquisition of new overrides from external tools.
//
// Stores are simple key/value models over a storage.Store: callers
// may back them with a directory (localfs) or with memory (afero.NewMemMapFs).
//
// No locking is performed: two processes writing to the same store race,
// and the last writer wins.
package core

import (
	"context"
	"iter"

	"github.com/oneconcern/overrides/pkg/errors"
	"github.com/oneconcern/overrides/pkg/model"
	"github.com/oneconcern/overrides/pkg/storage"
	"go.uber.org/zap"
)

// OverrideStore persists expression and descriptor override records
type OverrideStore struct {
	store storage.Store
	Settings
}

// NewOverrideStore builds an override store on top of some storage
func NewOverrideStore(store storage.Store, opts ...Option) *OverrideStore {
	return &OverrideStore{
		store:    store,
		Settings: settingsWithDefaults(opts),
	}
}

func (s *OverrideStore) String() string {
	return s.store.String()
}

func storeIOError(project string, kind model.Kind, err error) error {
	return model.NewProjectError(project, model.ErrStoreIO.Wrap(err)).WithKind(kind)
}

// Put writes the record of a project, replacing any previous record of the same kind
func (s *OverrideStore) Put(ctx context.Context, kind model.Kind, project string, content []byte) error {
	if err := model.ValidateProject(project); err != nil {
		return err
	}
	if !kind.Valid() {
		return errors.New("invalid override kind").Wrapf(kind.String())
	}
	if err := storage.PutBytes(ctx, s.store, model.GetPathToOverride(kind, project), content); err != nil {
		return storeIOError(project, kind, err)
	}
	s.logger.Debug("saved override",
		zap.Stringer("kind", kind),
		zap.String("project", project),
		zap.Int("size", len(content)),
	)
	return nil
}

// Has a record of this kind for the project?
func (s *OverrideStore) Has(ctx context.Context, kind model.Kind, project string) (bool, error) {
	has, err := s.store.Has(ctx, model.GetPathToOverride(kind, project))
	if err != nil {
		return false, storeIOError(project, kind, err)
	}
	return has, nil
}

// Get the record of this kind for the project
func (s *OverrideStore) Get(ctx context.Context, kind model.Kind, project string) ([]byte, error) {
	content, err := storage.GetBytes(ctx, s.store, model.GetPathToOverride(kind, project))
	if err != nil {
		return nil, storeIOError(project, kind, err)
	}
	return content, nil
}

// Delete all records for a project, reporting which ones were found.
//
// Deleting a project without records is not an error.
func (s *OverrideStore) Delete(ctx context.Context, project string) (model.Removal, error) {
	var removal model.Removal
	if err := model.ValidateProject(project); err != nil {
		return removal, err
	}
	for _, kind := range model.Kinds {
		has, err := s.Has(ctx, kind, project)
		if err != nil {
			return removal, err
		}
		if !has {
			continue
		}
		if err := s.store.Delete(ctx, model.GetPathToOverride(kind, project)); err != nil {
			return removal, storeIOError(project, kind, err)
		}
		removal.Mark(kind)
		s.logger.Debug("removed override",
			zap.Stringer("kind", kind),
			zap.String("project", project),
		)
	}
	return removal, nil
}

// ListAll yields every record of a kind.
//
// The sequence is lazy and restartable: each iteration lists the store again.
// An absent directory yields an empty sequence. Files which are not records of
// this kind are skipped. A failure to read a record is yielded alongside the
// project it relates to, and iteration may continue.
func (s *OverrideStore) ListAll(ctx context.Context, kind model.Kind) iter.Seq2[model.Record, error] {
	return func(yield func(model.Record, error) bool) {
		keys, err := s.store.List(ctx, model.GetPathToOverrides(kind))
		if err != nil {
			yield(model.Record{Kind: kind}, model.ErrStoreIO.Wrap(err))
			return
		}
		for _, key := range keys {
			project, ok := model.GetProjectFromPath(kind, key)
			if !ok {
				s.logger.Debug("skipping unexpected file in override directory", zap.String("key", key))
				continue
			}
			s.observer(kind, project)
			record := model.Record{Kind: kind, Project: project}
			record.Content, err = storage.GetBytes(ctx, s.store, key)
			if err != nil {
				if !yield(record, storeIOError(project, kind, err)) {
					return
				}
				continue
			}
			if !yield(record, nil) {
				return
			}
		}
	}
}

// Projects lists all projects with some override, with the kinds of records found for each
func (s *OverrideStore) Projects(ctx context.Context) (map[string][]model.Kind, error) {
	projects := make(map[string][]model.Kind)
	for _, kind := range model.Kinds {
		keys, err := s.store.List(ctx, model.GetPathToOverrides(kind))
		if err != nil {
			return nil, model.ErrStoreIO.Wrap(err)
		}
		for _, key := range keys {
			if project, ok := model.GetProjectFromPath(kind, key); ok {
				projects[project] = append(projects[project], kind)
			}
		}
	}
	return projects, nil
}
