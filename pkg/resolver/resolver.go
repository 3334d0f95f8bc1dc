// Package resolver selects a package description from an index archive.
//
// The archive is a tar file (optionally gzip-compressed) of package descriptions
// laid out as <name>/<version>/<name>.cabal, such as the Hackage index or
// all-cabal-hashes.
package resolver

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const descriptorExt = ".cabal"

// Selection describes the archive entry picked for a package
type Selection struct {
	Name    string
	Version string
	Member  string
	Pinned  bool

	// Path to the extracted package description. It is removed when the resolution returns.
	Path string
}

// Advisor is notified when a version has been picked on behalf of the caller
type Advisor func(Selection)

// Resolver looks up packages in an index archive
type Resolver struct {
	archive string
	fs      afero.Fs
	tempDir string
	logger  *zap.Logger
	advisor Advisor
}

// Option configures a resolver
type Option func(*Resolver)

// WithFs sets the file system to read the archive from and extract to. It defaults to the OS file system
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithTempDir sets the parent directory of transient extraction directories. It defaults to os.TempDir()
func WithTempDir(dir string) Option {
	return func(r *Resolver) {
		r.tempDir = dir
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithAdvisor sets a callback notified whenever an unpinned package is resolved
func WithAdvisor(advisor Advisor) Option {
	return func(r *Resolver) {
		r.advisor = advisor
	}
}

// New resolver for an index archive
func New(archive string, opts ...Option) *Resolver {
	r := &Resolver{
		archive: archive,
		fs:      afero.NewOsFs(),
		logger:  zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// Archive path
func (r *Resolver) Archive() string {
	return r.archive
}

// Resolve picks an archive entry for the package and calls fn with its extracted description.
//
// When several entries match, the last one in archive order is selected: this is a
// valid match, but not necessarily the latest version. A path stored more than once
// (such as a revised description) resolves to its last occurrence. The extraction
// directory only lives for the duration of the call.
func (r *Resolver) Resolve(ctx context.Context, pkg model.PackageID, fn func(Selection) error) error {
	member, content, err := r.find(ctx, pkg)
	if err != nil {
		return err
	}
	selection := selectionFromMember(pkg, member)
	if !selection.Pinned {
		r.logger.Warn("no version specified: picked some version, which may not be the latest. Please pin a version",
			zap.String("package", pkg.Name),
			zap.String("version", selection.Version),
		)
		if r.advisor != nil {
			r.advisor(selection)
		}
	}

	dir, err := afero.TempDir(r.fs, r.tempDir, "overrides-resolve-")
	if err != nil {
		return model.ErrArchive.Wrap(fmt.Errorf("creating extraction directory: %w", err))
	}
	defer func() {
		if e := r.fs.RemoveAll(dir); e != nil {
			r.logger.Warn("could not remove extraction directory", zap.String("dir", dir), zap.Error(e))
		}
	}()

	selection.Path = filepath.Join(dir, pkg.Name+descriptorExt)
	if err := afero.WriteFile(r.fs, selection.Path, content, 0o644); err != nil {
		return model.ErrArchive.Wrap(fmt.Errorf("extracting %s from %s: %w", member, r.archive, err))
	}
	r.logger.Debug("resolved package",
		zap.String("package", pkg.String()),
		zap.String("member", member),
		zap.String("path", selection.Path),
	)
	return fn(selection)
}

func searchPrefix(pkg model.PackageID) string {
	if pkg.Pinned() {
		return "/" + pkg.Name + "/" + pkg.Version + "/"
	}
	return "/" + pkg.Name + "/"
}

func matches(pkg model.PackageID, prefix, member string) bool {
	normalized := "/" + strings.TrimPrefix(member, "./")
	return strings.Contains(normalized, prefix) && strings.HasSuffix(normalized, "/"+pkg.Name+descriptorExt)
}

// find the last matching member in archive order, with its content
func (r *Resolver) find(ctx context.Context, pkg model.PackageID) (string, []byte, error) {
	prefix := searchPrefix(pkg)
	var (
		last    string
		content []byte
	)
	err := r.walk(ctx, func(hdr *tar.Header, rdr io.Reader) (bool, error) {
		if !hdr.FileInfo().Mode().IsRegular() || !matches(pkg, prefix, hdr.Name) {
			return true, nil
		}
		buf, err := io.ReadAll(rdr)
		if err != nil {
			return false, model.ErrArchive.Wrap(fmt.Errorf("reading %s from %s: %w", hdr.Name, r.archive, err))
		}
		last, content = hdr.Name, buf
		return true, nil
	})
	if err != nil {
		return "", nil, err
	}
	if last == "" {
		return "", nil, model.ErrNotFound.Wrapf(fmt.Sprintf("no entry for %s in %s", pkg, r.archive))
	}
	return last, content, nil
}

// walk iterates over archive members until fn returns false or an error
func (r *Resolver) walk(ctx context.Context, fn func(*tar.Header, io.Reader) (bool, error)) error {
	f, err := r.fs.Open(r.archive)
	if err != nil {
		if os.IsNotExist(err) {
			return model.ErrArchive.Wrap(fmt.Errorf("index archive %s not found: %w", r.archive, err))
		}
		return model.ErrArchive.Wrap(err)
	}
	defer f.Close()

	var rdr io.Reader = f
	if strings.HasSuffix(r.archive, ".gz") || strings.HasSuffix(r.archive, ".tgz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return model.ErrArchive.Wrap(fmt.Errorf("reading compressed index %s: %w", r.archive, err))
		}
		defer gz.Close()
		rdr = gz
	}

	tr := tar.NewReader(rdr)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return model.ErrArchive.Wrap(fmt.Errorf("reading index %s: %w", r.archive, err))
		}
		more, err := fn(hdr, tr)
		if err != nil || !more {
			return err
		}
	}
}

func selectionFromMember(pkg model.PackageID, member string) Selection {
	selection := Selection{
		Name:    pkg.Name,
		Version: pkg.Version,
		Member:  member,
		Pinned:  pkg.Pinned(),
	}
	if !selection.Pinned {
		// <...>/<name>/<version>/<name>.cabal
		parts := strings.Split(strings.TrimSuffix(member, "/"), "/")
		if len(parts) >= 3 {
			selection.Version = parts[len(parts)-2]
		}
	}
	return selection
}
