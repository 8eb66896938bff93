package models

import (
	"time"
)

// RunReport represents the results of one comparison run
type RunReport struct {
	// Run details
	RunID      string
	FirstPath  string
	SecondPath string
	OutputPath string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Per-side listing errors
	FirstError  *ListError
	SecondError *ListError

	// Result is set only when both listings succeeded
	Result *ComparisonResult

	// WriteErr is set when the report file could not be persisted
	WriteErr *WriteError

	// Overall status
	Status RunStatus
}

// Succeeded reports whether both listings and the report write succeeded
func (r *RunReport) Succeeded() bool {
	return r.Status == StatusSuccess
}

// RunStatus represents the overall result of a comparison run
type RunStatus string

const (
	// StatusSuccess indicates both listings and the report write succeeded
	StatusSuccess RunStatus = "success"
	// StatusListFailed indicates at least one directory could not be listed
	StatusListFailed RunStatus = "list_failed"
	// StatusWriteFailed indicates the report could not be written
	StatusWriteFailed RunStatus = "write_failed"
)

// ExitCode returns the appropriate exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusListFailed:
		return 1
	case StatusWriteFailed:
		return 2
	default:
		return 2
	}
}

// CompareRun represents a comparison run configuration
type CompareRun struct {
	ID         string
	FirstPath  string
	SecondPath string
	OutputPath string // empty means a default name is synthesized
	CreatedAt  time.Time
}

// Validate checks if the run configuration is valid
func (cr *CompareRun) Validate() error {
	if cr.FirstPath == "" {
		return &ValidationError{Field: "FirstPath", Message: "first directory path is required"}
	}
	if cr.SecondPath == "" {
		return &ValidationError{Field: "SecondPath", Message: "second directory path is required"}
	}
	return nil
}
