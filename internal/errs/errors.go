// Package errs defines the error categories shared by every extractor.
package errs

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of an error
type ErrorType string

// Error types
const (
	ParseError      ErrorType = "parse"
	ExtractionError ErrorType = "extraction"
	ValidationError ErrorType = "validation"
	TimeoutError    ErrorType = "timeout"
	InputError      ErrorType = "input"
)

// Common errors that can be used throughout the module
var (
	ErrNoDocument      = errors.New("no document to parse")
	ErrInvalidUTF8     = errors.New("document is not valid UTF-8")
	ErrDocumentLarge   = errors.New("document too large")
	ErrTimeout         = errors.New("operation timed out")
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrInvalidOEmbed   = errors.New("invalid oembed response")
	ErrUnknownFormat   = errors.New("unknown extraction format")
)

// Error is a categorized error. Its message reads "[type:func] message: cause".
type Error struct {
	Type    ErrorType
	Func    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s:%s] %v", e.Type, e.Func, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Func, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with context information
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Func: funcName, Message: message, Err: err}
}

// WrapParseError wraps a parsing error
func WrapParseError(err error, funcName, message string) error {
	return WrapError(err, ParseError, funcName, message)
}

// WrapExtractionError wraps an extraction error
func WrapExtractionError(err error, funcName, message string) error {
	return WrapError(err, ExtractionError, funcName, message)
}

// WrapValidationError wraps a validation error
func WrapValidationError(err error, funcName, message string) error {
	return WrapError(err, ValidationError, funcName, message)
}

// WrapInputError wraps an error caused by the caller's input
func WrapInputError(err error, funcName, message string) error {
	return WrapError(err, InputError, funcName, message)
}

// WrapTimeoutError wraps a timeout
func WrapTimeoutError(err error, funcName, message string) error {
	return WrapError(err, TimeoutError, funcName, message)
}

// IsErrorType checks if any error in the chain is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == errorType {
			return true
		}
		err = e.Err
	}
	return false
}

// IsParseError returns true if the error is a parse error
func IsParseError(err error) bool {
	return IsErrorType(err, ParseError)
}

// IsExtractionError returns true if the error is an extraction error
func IsExtractionError(err error) bool {
	return IsErrorType(err, ExtractionError)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	return IsErrorType(err, ValidationError)
}

// IsInputError returns true if the error was caused by the caller's input
func IsInputError(err error) bool {
	return IsErrorType(err, InputError)
}

// IsTimeoutError returns true if the error is a timeout
func IsTimeoutError(err error) bool {
	return IsErrorType(err, TimeoutError)
}
