package model

import (
	"fmt"

	"github.com/oneconcern/overrides/pkg/errors"
)

var (
	// ErrNotFound indicates that no archive entry matches a requested package
	ErrNotFound = errors.New("package not found")

	// ErrMalformedRecord indicates a stored override that cannot be parsed
	ErrMalformedRecord = errors.New("malformed override record")

	// ErrUnrecognizedOption indicates a flag outside of the recognized set
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrStoreIO indicates a failure to read or write the store
	ErrStoreIO = errors.New("override store i/o error")

	// ErrArchive indicates that the package index archive cannot be read or extracted
	ErrArchive = errors.New("index archive error")

	// ErrAcquisitionFailure indicates that an external fetcher or generator failed
	ErrAcquisitionFailure = errors.New("acquisition failure")
)

// ProjectError names the project (and the kind of record or flag) an error relates to
type ProjectError struct {
	Project string
	Kind    Kind
	Flag    Flag
	Err     error
}

// NewProjectError wraps an error with the project it relates to
func NewProjectError(project string, err error) *ProjectError {
	return &ProjectError{Project: project, Err: err}
}

// WithKind sets the kind of record in error
func (e *ProjectError) WithKind(kind Kind) *ProjectError {
	e.Kind = kind
	return e
}

// WithFlag sets the flag in error
func (e *ProjectError) WithFlag(flag Flag) *ProjectError {
	e.Flag = flag
	return e
}

func (e *ProjectError) Error() string {
	switch {
	case e.Kind != "":
		return fmt.Sprintf("project %q (%s override): %v", e.Project, e.Kind, e.Err)
	case e.Flag != "":
		return fmt.Sprintf("project %q (flag %q): %v", e.Project, e.Flag, e.Err)
	default:
		return fmt.Sprintf("project %q: %v", e.Project, e.Err)
	}
}

// Unwrap nested error
func (e *ProjectError) Unwrap() error {
	return e.Err
}
