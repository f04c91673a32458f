package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyToken is returned when an empty credential is set.
	ErrEmptyToken = errors.New("token must not be empty")

	// ErrNoCredential is returned when no credential can be resolved from any source.
	ErrNoCredential = errors.New("no credential available")

	// ErrNothingToCommit is reported by a repository backend when the working copy is clean.
	ErrNothingToCommit = errors.New("nothing to commit, working tree clean")

	// ErrNotConfigured is returned when an operation needs settings that were never provided.
	ErrNotConfigured = errors.New("not configured")

	// ErrUpstream is returned when a third-party service answered with a failure.
	ErrUpstream = errors.New("upstream service failed")
)

// ValidationError reports bad or missing input: an unknown operation,
// a path that does not exist, a URL that is not a GitHub URL.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ExecutionError reports a command that could not be started or exceeded its time budget.
type ExecutionError struct {
	Command  string
	TimedOut bool
	Cause    error
}

func (e *ExecutionError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("command timed out: %v", e.Cause)
	}
	return fmt.Sprintf("command could not be executed: %v", e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// SyncError reports an external git operation that failed. Output carries the
// captured error stream verbatim so operators can diagnose credential problems.
type SyncError struct {
	Operation string
	Output    string
	Cause     error
}

func (e *SyncError) Error() string {
	output := strings.TrimSpace(e.Output)
	switch {
	case output != "" && e.Cause != nil:
		return fmt.Sprintf("git %s failed: %v: %s", e.Operation, e.Cause, output)
	case output != "":
		return fmt.Sprintf("git %s failed: %s", e.Operation, output)
	default:
		return fmt.Sprintf("git %s failed: %v", e.Operation, e.Cause)
	}
}

func (e *SyncError) Unwrap() error { return e.Cause }

// AuthError reports a failed OAuth exchange or an upstream GitHub API error.
// StatusCode is the upstream HTTP status when one was received.
type AuthError struct {
	StatusCode  int
	Description string
	Cause       error
}

func (e *AuthError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "Unknown"
}

func (e *AuthError) Unwrap() error { return e.Cause }
