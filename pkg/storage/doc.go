// Copyright © 2018 One Concern

// Package storage provides interface to handle backend storage objects.
//
// Objects are addressed by slash-separated keys, so that a directory tree
// can be treated as a key/value model. This package supports the following backends:
//   - local file system, or any afero.Fs (see package localfs)
package storage
