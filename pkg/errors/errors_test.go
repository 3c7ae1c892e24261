// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and exit code mapping

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/lineinfile/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "destination_missing_error",
			code:    errors.ErrDestinationMissing,
			message: "destination does not exist",
			wantStr: "[DESTINATION_MISSING] destination does not exist",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid state",
			wantStr: "[INVALID_INPUT] invalid state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPatternMismatch, "line %q does not match %q", "a=1", "^b=")
	want := `line "a=1" does not match "^b="`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileWrite, "write failed")

		if err.Code != errors.ErrFileWrite {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileWrite)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_WRITE] write failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDestinationIsDirectory, "is a directory").
		WithDetail("path", "/etc")

	if err.Details["path"] != "/etc" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/etc")
	}
	if got := errors.GetErrorDetails(err)["path"]; got != "/etc" {
		t.Errorf("GetErrorDetails() path = %v, want /etc", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrPatternInvalid, "error 1")
	err2 := errors.New(errors.ErrPatternInvalid, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(fmt.Errorf("context: %w", err1), err2) {
		t.Error("errors.Is() should see through fmt wrapping")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrMissingField, "x"), errors.ErrMissingField, true},
		{"different_code", errors.New(errors.ErrMissingField, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileRead, "denied"), errors.ErrFileRead, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrFileRead, false},
		{"nil_error", nil, errors.ErrFileRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, errors.ExitOK},
		{stderrors.New("boom"), errors.ExitFailure},
		{errors.New(errors.ErrInvalidInput, "x"), errors.ExitUsage},
		{errors.New(errors.ErrPatternInvalid, "x"), errors.ExitUsage},
		{errors.New(errors.ErrMissingField, "x"), errors.ExitMissingField},
		{errors.New(errors.ErrPatternMismatch, "x"), errors.ExitPatternMismatch},
		{errors.New(errors.ErrDestinationIsDirectory, "x"), errors.ExitDestinationIsDirectory},
		{errors.New(errors.ErrDestinationMissing, "x"), errors.ExitDestinationMissing},
		{errors.New(errors.ErrBackup, "x"), errors.ExitIO},
		{fmt.Errorf("wrapped: %w", errors.New(errors.ErrDestinationMissing, "x")), errors.ExitDestinationMissing},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", errors.GetErrorCode(tt.err)), func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
