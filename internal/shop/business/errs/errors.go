// Package errs defines the error kinds shared by the engine, the mappers and
// the web layer. Callers match on the kind with errors.Is and decide whether
// to retry, render a 4xx page or abort the request.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a read miss on an engine lookup or a mapper query.
	ErrNotFound = errors.New("record not found")
	// ErrCommit marks a failed insert/commit against the store.
	ErrCommit = errors.New("db commit failed")
	// ErrUpdate marks a failed row update against the store.
	ErrUpdate = errors.New("db update failed")
	// ErrValidation marks malformed input: an unknown discriminator or a
	// non-numeric id parameter.
	ErrValidation = errors.New("validation failed")
)

// NotFound reports a miss for the given search key.
func NotFound(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, v...))
}

// Commit wraps a driver error from a failed insert. The driver error stays
// in the chain for errors.Is/As.
func Commit(err error) error {
	return fmt.Errorf("%w: %w", ErrCommit, err)
}

// Update wraps a driver error from a failed update.
func Update(err error) error {
	return fmt.Errorf("%w: %w", ErrUpdate, err)
}

// Validation reports malformed caller input.
func Validation(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, v...))
}
