package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a pathclip error kind.
type ErrorCode string

const (
	ErrValidation  ErrorCode = "VALIDATION"    // bad names, missing or malformed arguments
	ErrNotFound    ErrorCode = "NOT_FOUND"     // folder or file-in-folder missing
	ErrConflict    ErrorCode = "CONFLICT"      // duplicate folder name or folder membership
	ErrIOAllFailed ErrorCode = "IO_ALL_FAILED" // every file in a batch was unreadable
	ErrInternal    ErrorCode = "INTERNAL"      // host plumbing failures
)

// Error is a tagged error carrying a kind and the human-readable message
// shown to the user at the command boundary.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidation creates a validation error.
func NewValidation(msg string) *Error {
	return &Error{
		Code:    ErrValidation,
		Message: msg,
	}
}

// NewNotFound creates a not-found error.
func NewNotFound(msg string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: msg,
	}
}

// NewFolderNotFound creates a not-found error for a folder id.
func NewFolderNotFound(id string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: "Folder not found",
		Details: map[string]any{"folder_id": id},
	}
}

// NewFileNotInFolder creates a not-found error for a path missing from a folder.
func NewFileNotInFolder(id, path string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Message: "File not found in folder",
		Details: map[string]any{"folder_id": id, "path": path},
	}
}

// NewConflict creates a conflict error.
func NewConflict(msg string) *Error {
	return &Error{
		Code:    ErrConflict,
		Message: msg,
	}
}

// NewNameAlreadyExists creates a conflict error for folder name collisions.
func NewNameAlreadyExists(name string) *Error {
	return &Error{
		Code:    ErrConflict,
		Message: "Folder with this name already exists",
		Details: map[string]any{"name": name},
	}
}

// NewFileAlreadyInFolder creates a conflict error for duplicate membership.
func NewFileAlreadyInFolder(id, path string) *Error {
	return &Error{
		Code:    ErrConflict,
		Message: "File already exists in folder",
		Details: map[string]any{"folder_id": id, "path": path},
	}
}

// NewIOAllFailed creates an error for a batch read where nothing could be read.
func NewIOAllFailed(msg string, attempted int) *Error {
	return &Error{
		Code:    ErrIOAllFailed,
		Message: msg,
		Details: map[string]any{"attempted": attempted},
	}
}

// NewInternal creates an error for unexpected internal failures.
// The original error is kept in Details for logging only.
func NewInternal(err error) *Error {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if err, or any error it wraps, is an *Error with the given code.
func Is(err error, code ErrorCode) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Message returns the user-facing text of err: the bare message for an
// *Error, err.Error() otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// As is errors.As from the standard library, re-exported so callers that
// import this package under the name errors keep access to it.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
