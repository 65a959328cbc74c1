package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapError(t *testing.T) {
	baseErr := errors.New("base error")
	wrapped := WrapError(baseErr, ParseError, "TestFunc", "test message")

	// Test that the error is properly formatted
	if !strings.Contains(wrapped.Error(), "[parse:TestFunc]") {
		t.Errorf("Error message should contain formatted prefix, got: %s", wrapped.Error())
	}

	// Test that the message is included
	if !strings.Contains(wrapped.Error(), "test message") {
		t.Errorf("Error message should contain the message, got: %s", wrapped.Error())
	}

	// Test that the original error is included
	if !strings.Contains(wrapped.Error(), baseErr.Error()) {
		t.Errorf("Error message should contain the original error, got: %s", wrapped.Error())
	}

	// Test unwrapping
	if !errors.Is(wrapped, baseErr) {
		t.Errorf("errors.Is should return true for the base error")
	}

	var e *Error
	if !errors.As(wrapped, &e) || e.Func != "TestFunc" {
		t.Errorf("errors.As should expose the typed error, got %#v", e)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := WrapError(nil, ParseError, "TestFunc", "ignored"); err != nil {
		t.Errorf("wrapping nil should return nil, got %v", err)
	}
}

func TestWrapErrorWithoutMessage(t *testing.T) {
	err := WrapInputError(ErrNoDocument, "Validate", "")
	if got, want := err.Error(), "[input:Validate] no document to parse"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrapErrorSpecificTypes(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name      string
		wrapFunc  func(error, string, string) error
		errorType ErrorType
		checkFunc func(error) bool
	}{
		{
			name:      "ParseError",
			wrapFunc:  WrapParseError,
			errorType: ParseError,
			checkFunc: IsParseError,
		},
		{
			name:      "ExtractionError",
			wrapFunc:  WrapExtractionError,
			errorType: ExtractionError,
			checkFunc: IsExtractionError,
		},
		{
			name:      "ValidationError",
			wrapFunc:  WrapValidationError,
			errorType: ValidationError,
			checkFunc: IsValidationError,
		},
		{
			name:      "InputError",
			wrapFunc:  WrapInputError,
			errorType: InputError,
			checkFunc: IsInputError,
		},
		{
			name:      "TimeoutError",
			wrapFunc:  WrapTimeoutError,
			errorType: TimeoutError,
			checkFunc: IsTimeoutError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedErr := tt.wrapFunc(baseErr, "TestFunc", "test message")

			// Test specific error type detection
			if !tt.checkFunc(wrappedErr) {
				t.Errorf("%s should be detected by Is%s", tt.name, tt.name)
			}

			// Test error type checking function
			if !IsErrorType(wrappedErr, tt.errorType) {
				t.Errorf("IsErrorType should identify %s as type %s", tt.name, tt.errorType)
			}

			// Test error message formatting
			if !strings.Contains(wrappedErr.Error(), string(tt.errorType)) {
				t.Errorf("Error message should contain error type %s", tt.errorType)
			}
		})
	}
}

func TestIsErrorTypeThroughChain(t *testing.T) {
	inner := WrapInputError(ErrInvalidUTF8, "Validate", "")
	outer := WrapExtractionError(inner, "ExtractAll", "extraction failed")
	wrapped := fmt.Errorf("cli: %w", outer)

	if !IsInputError(wrapped) {
		t.Error("input error should be found through the chain")
	}
	if !IsExtractionError(wrapped) {
		t.Error("extraction error should be found through the chain")
	}
	if IsTimeoutError(wrapped) {
		t.Error("timeout error should not be reported")
	}
	if !errors.Is(wrapped, ErrInvalidUTF8) {
		t.Error("sentinel should be reachable with errors.Is")
	}
	if IsParseError(errors.New("[parse:Fake] not typed")) {
		t.Error("plain errors must not match by message text")
	}
}
