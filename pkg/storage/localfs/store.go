// Copyright © 2018 One Concern

// Package localfs implements a storage.Store on top of an afero file system.
//
// Keys map to slash-separated paths relative to the root of the file system.
// Use afero.NewBasePathFs to anchor the store to a directory, or afero.NewMemMapFs
// for an in-memory store.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/oneconcern/overrides/pkg/storage"
	"github.com/spf13/afero"
)

// New creates a new local file system backed storage model
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), ".overrides")
	}
	return &localFS{
		fs: fs,
	}
}

// NewAt creates a store rooted at some directory of the OS file system
func NewAt(root string) storage.Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), root))
}

type localFS struct {
	fs afero.Fs
}

func validKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q", storage.ErrInvalidKey, key)
	}
	for _, component := range strings.Split(key, "/") {
		if component == ".." {
			return fmt.Errorf("%w: %q", storage.ErrInvalidKey, key)
		}
	}
	return nil
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	if err := validKey(key); err != nil {
		return false, err
	}
	fi, err := l.fs.Stat(filepath.FromSlash(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, storage.ErrNotFound
	}
	return l.fs.Open(filepath.FromSlash(key))
}

// Put writes the object, replacing any previous content for this key
func (l *localFS) Put(ctx context.Context, key string, source io.Reader) error {
	if err := validKey(key); err != nil {
		return err
	}
	name := filepath.FromSlash(key)
	if dir := filepath.Dir(name); dir != "." {
		if err := l.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ensuring directories for %q: %w", key, err)
		}
	}
	target, err := l.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create record for %q: %w", key, err)
	}
	if _, err = io.Copy(target, source); err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %w", key, err)
	}
	return target.Close()
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := l.fs.Remove(filepath.FromSlash(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p == root || info.IsDir() {
			return nil
		}
		res = append(res, filepath.ToSlash(p))
		return nil
	})
	if e != nil {
		if os.IsNotExist(e) {
			return []string{}, nil
		}
		return nil, e
	}
	return res, nil
}

// List the objects stored directly under dir, in lexical order.
//
// A missing directory yields an empty list.
func (l *localFS) List(ctx context.Context, dir string) ([]string, error) {
	if err := validKey(dir); err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(l.fs, filepath.FromSlash(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}
	res := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		res = append(res, path.Join(dir, entry.Name()))
	}
	return res, nil
}

func (l *localFS) Clear(ctx context.Context) error {
	entries, err := afero.ReadDir(l.fs, ".")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if err := l.fs.RemoveAll(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
