package models

import "fmt"

// ErrorKind classifies why a directory listing could not be obtained
type ErrorKind string

const (
	// KindNotFound indicates the path does not exist
	KindNotFound ErrorKind = "not_found"
	// KindNotADirectory indicates the path exists but is not a directory
	KindNotADirectory ErrorKind = "not_a_directory"
	// KindPermissionDenied indicates access was denied during enumeration
	KindPermissionDenied ErrorKind = "permission_denied"
	// KindIOError indicates any other enumeration failure
	KindIOError ErrorKind = "io_error"
)

// ListError describes a failed directory listing.
// Its Error string is the exact line that appears after "ERROR: " in the
// rendered report, so the wording is part of the output contract.
type ListError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ListError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("Directory does not exist: %s", e.Path)
	case KindNotADirectory:
		return fmt.Sprintf("Path is not a directory: %s", e.Path)
	case KindPermissionDenied:
		return fmt.Sprintf("Permission denied accessing directory: %s", e.Path)
	default:
		return fmt.Sprintf("Error reading directory %s: %v", e.Path, e.Err)
	}
}

// Unwrap exposes the underlying filesystem error for errors.Is/As
func (e *ListError) Unwrap() error {
	return e.Err
}

// WriteError describes a failed report write
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying filesystem error for errors.Is/As
func (e *WriteError) Unwrap() error {
	return e.Err
}

// ValidationError represents an invalid configuration value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
