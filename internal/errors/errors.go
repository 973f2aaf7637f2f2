// Package errors provides centralized error definitions and error handling
// utilities for tasklist. It defines the sentinel errors shared across
// packages, two domain error types, and classification helpers.
//
// # Error Types
//
//   - TaskError: an operation on a specific task (unknown id, empty text)
//   - StorageError: a read or write against a storage backend failed
//
// # Usage
//
//	err := errors.NewStorageError("save", errors.ErrStoreCorrupted).
//	    WithBackend("file").WithKey("tasks")
//
//	if errors.Is(err, errors.ErrStoreCorrupted) { ... }
//
//	var storageErr *errors.StorageError
//	if errors.As(err, &storageErr) { ... }
//
// Most failure modes in tasklist degrade to a silent no-op; these types exist
// for the paths that do report errors (CLI commands, save failures).
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Task-related sentinel errors
var (
	// ErrEmptyText indicates that task text was empty after trimming.
	ErrEmptyText = New("task text is empty")
	// ErrTaskNotFound indicates that no task has the given id.
	ErrTaskNotFound = New("task not found")
	// ErrAmbiguousID indicates that an id prefix matched more than one task.
	ErrAmbiguousID = New("task id is ambiguous")
	// ErrInvalidDate indicates that a due date was not a YYYY-MM-DD calendar date.
	ErrInvalidDate = New("invalid date")
)

// Storage-related sentinel errors
var (
	// ErrNotFound indicates that a storage key does not exist.
	ErrNotFound = New("not found")
	// ErrStoreCorrupted indicates that a stored value could not be decoded.
	ErrStoreCorrupted = New("stored data corrupted")
	// ErrUnknownBackend indicates that the configured storage backend is not supported.
	ErrUnknownBackend = New("unknown storage backend")
)

// ErrConfirmationRequired indicates that a destructive operation was not confirmed.
var ErrConfirmationRequired = New("confirmation required")

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	userFacing bool
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// format builds "<kind> [k=v, ...]: message: cause".
func (e *baseError) format(kind string, parts []string) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// TaskError represents a failed operation on a task.
//
// Example:
//
//	err := errors.NewTaskError("toggle", errors.ErrTaskNotFound).WithTaskID("3f2a")
//	fmt.Println(err) // "task error [task=3f2a]: toggle: task not found"
type TaskError struct {
	baseError
	TaskID string
}

// NewTaskError creates a new TaskError.
func NewTaskError(message string, cause error) *TaskError {
	return &TaskError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithTaskID adds a task id to the error context.
func (e *TaskError) WithTaskID(id string) *TaskError {
	e.TaskID = id
	return e
}

// Error returns the formatted error message.
func (e *TaskError) Error() string {
	var parts []string
	if e.TaskID != "" {
		parts = append(parts, fmt.Sprintf("task=%s", e.TaskID))
	}
	return e.format("task error", parts)
}

// Is checks if this error matches the target.
func (e *TaskError) Is(target error) bool {
	if _, ok := target.(*TaskError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// StorageError represents a failed storage operation.
//
// Example:
//
//	err := errors.NewStorageError("load", ioErr).WithBackend("sqlite").WithKey("tasks")
type StorageError struct {
	baseError
	Backend string
	Key     string
}

// NewStorageError creates a new StorageError.
func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: false,
		},
	}
}

// WithBackend adds the backend name to the error context.
func (e *StorageError) WithBackend(backend string) *StorageError {
	e.Backend = backend
	return e
}

// WithKey adds the storage key to the error context.
func (e *StorageError) WithKey(key string) *StorageError {
	e.Key = key
	return e
}

// Error returns the formatted error message.
func (e *StorageError) Error() string {
	var parts []string
	if e.Backend != "" {
		parts = append(parts, fmt.Sprintf("backend=%s", e.Backend))
	}
	if e.Key != "" {
		parts = append(parts, fmt.Sprintf("key=%s", e.Key))
	}
	return e.format("storage error", parts)
}

// Is checks if this error matches the target.
func (e *StorageError) Is(target error) bool {
	if _, ok := target.(*StorageError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end
// users. Task errors and the task sentinels are; storage errors are not.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var taskErr *TaskError
	if As(err, &taskErr) {
		return taskErr.IsUserFacing()
	}
	var storageErr *StorageError
	if As(err, &storageErr) {
		return storageErr.IsUserFacing()
	}

	return Is(err, ErrEmptyText) || Is(err, ErrTaskNotFound) ||
		Is(err, ErrAmbiguousID) || Is(err, ErrInvalidDate)
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
