// Copyright © 2018 One Concern

package storage

import (
	"bytes"
	"context"
	"io"
)

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNotFound     errString = "not found"
	ErrNotSupported errString = "not supported"
	ErrInvalidKey   errString = "invalid key"
)

// Store implementations know how to write entries to a K/V model.
//
// Typically this is something file system-like: keys are slash-separated paths
// and List() returns the objects found directly under a "directory" prefix.
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(context.Context, string) (bool, error)
	Get(context.Context, string) (io.ReadCloser, error)
	Put(context.Context, string, io.Reader) error
	Delete(context.Context, string) error
	Keys(context.Context) ([]string, error)
	List(context.Context, string) ([]string, error)
	Clear(context.Context) error
}

// GetBytes reads a whole object into memory
func GetBytes(ctx context.Context, store Store, key string) ([]byte, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

// PutBytes writes a whole object, overwriting any existing one
func PutBytes(ctx context.Context, store Store, key string, content []byte) error {
	return store.Put(ctx, key, bytes.NewReader(content))
}
