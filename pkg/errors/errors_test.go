// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/StevenCyb/rcolors/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_color_error",
			code:    errors.ErrUnknownColor,
			message: "unknown foreground color \"mauve\"",
			wantStr: "[UNKNOWN_COLOR] unknown foreground color \"mauve\"",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no text given",
			wantStr: "[INVALID_INPUT] no text given",
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
	err := errors.Newf(errors.ErrUnknownAttribute, "unknown attribute %q", "sparkle")
	want := "[UNKNOWN_ATTRIBUTE] unknown attribute \"sparkle\""
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("broken pipe")
	err := errors.Wrap(inner, errors.ErrWrite, "write failed")

	if !stderrors.Is(err, inner) {
		t.Error("wrapped error should match errors.Is on the inner error")
	}

	if got := err.Error(); got != "[WRITE] write failed: broken pipe" {
		t.Errorf("Error() = %q", got)
	}

	if errors.Wrap(nil, errors.ErrWrite, "ignored") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrUnknownColor, "nope")

	if !errors.IsErrorCode(err, errors.ErrUnknownColor) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrWrite) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknownColor) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrInternal, "boom")
	if got := errors.GetErrorCode(err); got != errors.ErrInternal {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrInternal)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownColor, "nope").WithDetail("name", "mauve")
	if err.Details["name"] != "mauve" {
		t.Errorf("WithDetail did not record the detail: %v", err.Details)
	}
}
