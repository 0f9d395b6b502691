package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/superflow-dev/superflow-extension/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "config_missing",
			code:    errors.ErrConfigMissing,
			message: "publish directory not set",
			wantStr: "[CONFIG_MISSING] publish directory not set",
		},
		{
			name:    "no_insertion_point",
			code:    errors.ErrNoInsertionPoint,
			message: "no </head> or </body>",
			wantStr: "[NO_INSERTION_POINT] no </head> or </body>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
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
	err := errors.Newf(errors.ErrNetworkFailure, "unexpected status %d", 502)
	if err.Message != "unexpected status 502" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIOFailure, "cannot read file")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}
		wantStr := "[IO_FAILURE] cannot read file: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrIOFailure, "cannot write %s", "index.html")
		if err.Message != "cannot write index.html" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrNetworkFailure, "request failed").
		WithDetail("status", 500).
		WithDetails(map[string]interface{}{"snippet_id": 42, "site_id": "abc"})

	if err.Details["status"] != 500 {
		t.Errorf("status = %v", err.Details["status"])
	}
	if err.Details["snippet_id"] != 42 || err.Details["site_id"] != "abc" {
		t.Errorf("details = %v", err.Details)
	}
	if got := errors.GetErrorDetails(err); got["site_id"] != "abc" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() on a plain error should be nil")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrIOFailure, "error 1")
	err2 := errors.New(errors.ErrIOFailure, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with SuperflowError")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"superflow_error", errors.New(errors.ErrConfigMissing, "no token"), errors.ErrConfigMissing},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("connection refused")
	netErr := errors.Wrap(rootCause, errors.ErrNetworkFailure, "list snippets")
	runErr := errors.Wrap(netErr, errors.ErrInternal, "snippet upsert")

	if !errors.IsErrorCode(runErr, errors.ErrInternal) {
		t.Error("top level should have ErrInternal code")
	}
	if !errors.IsErrorCode(runErr.Unwrap(), errors.ErrNetworkFailure) {
		t.Error("middle error should have ErrNetworkFailure code")
	}
	if !stderrors.Is(runErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
