// Package errors defines the error taxonomy shared by the catalog
// pipeline: scanning, building, filter evaluation, and filesystem
// watching each have a dedicated error type so callers can distinguish
// a fatal startup failure from a recoverable reload failure.
package errors

import (
	"errors"
	"fmt"
)

// ScanError reports a failure to enumerate the template source tree.
// The scan is all-or-nothing: any unreadable entry fails the whole
// scan, since a catalog built from a partial source set is unsafe.
type ScanError struct {
	// Root is the template root directory the scan started from.
	Root string
	// Path is the entry that caused the failure, empty when the root
	// itself could not be resolved.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("scanning %s: %s: %v", e.Root, e.Path, e.Err)
	}
	return fmt.Sprintf("scanning %s: %v", e.Root, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error { return e.Err }

// BuildError reports a failure to compile the template catalog. It
// names the offending file so the error is actionable from a log line
// alone. A BuildError is fatal at startup and non-fatal afterward; in
// the latter case the store keeps serving the previous catalog.
type BuildError struct {
	// File is the logical name of the template that failed to compile,
	// empty when the failure was not tied to a single file.
	File string
	// Err is the underlying compile error.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("building catalog: template %q: %v", e.File, e.Err)
	}
	return fmt.Sprintf("building catalog: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error { return e.Err }

// FilterError reports a type mismatch during filter evaluation, e.g.
// a duration filter applied to a non-numeric value. Filters run at
// render time against page-local data, so the mismatch must surface as
// a clear error instead of a panic.
type FilterError struct {
	// Filter is the registered filter name.
	Filter string
	// Msg describes the expected input.
	Msg string
	// Value is the offending input value.
	Value interface{}
}

// Error implements the error interface.
func (e *FilterError) Error() string {
	return fmt.Sprintf("filter %q: %s (got %T)", e.Filter, e.Msg, e.Value)
}

// WatchError reports that the filesystem observer could not be
// established or died. Serving continues with the last good catalog;
// only the reload capability is lost.
type WatchError struct {
	// Path is the watched directory.
	Path string
	// Err is the underlying watcher error.
	Err error
}

// Error implements the error interface.
func (e *WatchError) Error() string {
	return fmt.Sprintf("watching %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *WatchError) Unwrap() error { return e.Err }

// IsBuildError reports whether err is or wraps a BuildError.
func IsBuildError(err error) bool {
	var be *BuildError
	return errors.As(err, &be)
}

// IsScanError reports whether err is or wraps a ScanError.
func IsScanError(err error) bool {
	var se *ScanError
	return errors.As(err, &se)
}
