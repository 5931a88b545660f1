package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeLoadNotFound, "dashboard.fsx not found")

	if err == nil {
		t.Fatal("New should return non-nil error")
	}

	if err.Code != ErrCodeLoadNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLoadNotFound)
	}

	if err.Message != "dashboard.fsx not found" {
		t.Errorf("Message = %v", err.Message)
	}

	if err.Underlying != nil {
		t.Error("Underlying should be nil for New error")
	}

	if len(err.Stack) == 0 {
		t.Error("Stack should be captured")
	}
}

func TestWrap(t *testing.T) {
	underlying := errors.New("original error")
	err := Wrap(underlying, ErrCodeLoadRead, "failed to read file")

	if err == nil {
		t.Fatal("Wrap should return non-nil error")
	}

	if err.Underlying != underlying {
		t.Error("Underlying should be preserved")
	}

	if err.Code != ErrCodeLoadRead {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLoadRead)
	}

	if !strings.Contains(err.Error(), "original error") {
		t.Error("Error string should include underlying error")
	}
}

func TestWrap_Nil(t *testing.T) {
	err := Wrap(nil, ErrCodeInternal, "test")

	if err != nil {
		t.Error("Wrap of nil should return nil")
	}
}

func TestWithContext(t *testing.T) {
	err := New(ErrCodeWatchTarget, "watch registration failed")
	err.WithContext("watched", "dashboard.fsx")
	err.WithContext("attempt", 1)

	if err.Context["watched"] != "dashboard.fsx" {
		t.Error("Context should contain 'watched' key")
	}

	if err.Context["attempt"] != 1 {
		t.Error("Context should contain 'attempt' key")
	}

	errStr := err.Error()
	if !strings.Contains(errStr, "watched") || !strings.Contains(errStr, "dashboard.fsx") {
		t.Error("Error string should include context")
	}
}

func TestWithPath(t *testing.T) {
	err := New(ErrCodeLoadParse, "unterminated directive").WithPath("widgets.fsx")

	if err.Path() != "widgets.fsx" {
		t.Errorf("Path = %q", err.Path())
	}

	if New(ErrCodeInternal, "no path").Path() != "" {
		t.Error("Path should be empty when not set")
	}
}

func TestWithRemediation(t *testing.T) {
	err := New(ErrCodeLoadNotFound, "missing file").
		WithRemediation("Check that the file path is correct").
		WithRemediation("Make sure the file exists in the expected location")

	if len(err.Remediation) != 2 {
		t.Errorf("Remediation count = %d, want 2", len(err.Remediation))
	}
}

func TestError_String(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "tick rate must be positive")
	errStr := err.Error()

	if !strings.Contains(errStr, string(ErrCodeConfigInvalid)) {
		t.Error("Error string should contain error code")
	}

	if !strings.Contains(errStr, "tick rate must be positive") {
		t.Error("Error string should contain message")
	}
}

func TestError_WithUnderlying(t *testing.T) {
	underlying := errors.New("file not found")
	err := Wrap(underlying, ErrCodeLoadRead, "failed to read")

	errStr := err.Error()

	if !strings.Contains(errStr, "file not found") {
		t.Error("Error string should include underlying error")
	}

	if !strings.Contains(errStr, "LOAD_READ") {
		t.Error("Error string should include error code")
	}
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("underlying")
	err := Wrap(underlying, ErrCodeInternal, "wrapped")

	if err.Unwrap() != underlying {
		t.Error("Unwrap should return underlying error")
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should see through the wrapper")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeRenderBackend, "screen init failed")

	if !IsCode(err, ErrCodeRenderBackend) {
		t.Error("IsCode should return true for matching code")
	}

	if IsCode(err, ErrCodeRenderIO) {
		t.Error("IsCode should return false for non-matching code")
	}

	if IsCode(nil, ErrCodeRenderBackend) {
		t.Error("IsCode should return false for nil error")
	}

	stdErr := errors.New("standard error")
	if IsCode(stdErr, ErrCodeInternal) {
		t.Error("IsCode should return false for plain errors")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeInvalidState, "no entry file loaded")

	if GetCode(err) != ErrCodeInvalidState {
		t.Errorf("GetCode = %v", GetCode(err))
	}

	if GetCode(nil) != "" {
		t.Error("GetCode should return empty string for nil")
	}

	stdErr := errors.New("standard")
	if GetCode(stdErr) != ErrCodeInternal {
		t.Error("GetCode should return ErrCodeInternal for plain errors")
	}
}

func TestStackTrace(t *testing.T) {
	err := New(ErrCodeInternal, "test error")

	trace := err.StackTrace()

	if trace == "" {
		t.Error("StackTrace should return non-empty string")
	}

	if !strings.Contains(trace, "Stack trace:") {
		t.Error("StackTrace should contain header")
	}

	if len(err.Stack) == 0 {
		t.Error("Stack should have frames")
	}
}

func TestChaining(t *testing.T) {
	err := New(ErrCodeLoadParse, "bad directive").
		WithPath("panel.fsx").
		WithContext("line", 12).
		WithRemediation("Check the directive syntax")

	if err.Code != ErrCodeLoadParse {
		t.Error("Chaining should preserve code")
	}

	if len(err.Context) != 2 {
		t.Errorf("Context entries = %d, want 2", len(err.Context))
	}

	if len(err.Remediation) != 1 {
		t.Error("Chaining should keep remediation")
	}
}
