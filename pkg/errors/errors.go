package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Usage errors, reported before anything touches the disk
	ErrInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrMissingField    ErrorCode = "MISSING_FIELD"
	ErrPatternInvalid  ErrorCode = "PATTERN_INVALID"
	ErrPatternMismatch ErrorCode = "PATTERN_MISMATCH"

	// Precondition errors on the destination
	ErrDestinationIsDirectory ErrorCode = "DESTINATION_IS_DIRECTORY"
	ErrDestinationMissing     ErrorCode = "DESTINATION_MISSING"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrBackup    ErrorCode = "BACKUP"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrTasksLoad   ErrorCode = "TASKS_LOAD"
)

// Process exit codes. Each failure kind callers need to tell apart gets
// its own value.
const (
	ExitOK                     = 0
	ExitFailure                = 1
	ExitUsage                  = 2
	ExitMissingField           = 3
	ExitPatternMismatch        = 4
	ExitDestinationIsDirectory = 5
	ExitDestinationMissing     = 6
	ExitIO                     = 7
)

// LineinfileError represents a structured error with code and details
type LineinfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LineinfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LineinfileError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LineinfileError) Is(target error) bool {
	var targetErr *LineinfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LineinfileError with the given code and message
func New(code ErrorCode, message string) *LineinfileError {
	return &LineinfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LineinfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LineinfileError {
	return &LineinfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LineinfileError
func Wrap(err error, code ErrorCode, message string) *LineinfileError {
	if err == nil {
		return nil
	}
	return &LineinfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LineinfileError {
	if err == nil {
		return nil
	}
	return &LineinfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LineinfileError) WithDetail(key string, value interface{}) *LineinfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lifErr *LineinfileError
	if errors.As(err, &lifErr) {
		return lifErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LineinfileError
func GetErrorCode(err error) ErrorCode {
	var lifErr *LineinfileError
	if errors.As(err, &lifErr) {
		return lifErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LineinfileError
func GetErrorDetails(err error) map[string]interface{} {
	var lifErr *LineinfileError
	if errors.As(err, &lifErr) {
		return lifErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status reported by the CLI.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch GetErrorCode(err) {
	case ErrInvalidInput, ErrPatternInvalid, ErrConfigLoad, ErrConfigParse, ErrTasksLoad:
		return ExitUsage
	case ErrMissingField:
		return ExitMissingField
	case ErrPatternMismatch:
		return ExitPatternMismatch
	case ErrDestinationIsDirectory:
		return ExitDestinationIsDirectory
	case ErrDestinationMissing:
		return ExitDestinationMissing
	case ErrFileRead, ErrFileWrite, ErrDirCreate, ErrBackup:
		return ExitIO
	default:
		return ExitFailure
	}
}
