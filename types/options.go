package types

import (
	"log/slog"
	"time"
)

// ExtractionOptions configures an extraction call.
// It sets the default base URL, limits on document size and extraction
// time, and where diagnostics are logged.
type ExtractionOptions struct {
	BaseURL       string        // Default base URL when a call passes none
	MaxBufferSize int           // Maximum document size in bytes, 0 disables the check
	Timeout       time.Duration // Timeout for one extraction call
	StrictUTF8    bool          // Reject invalid UTF-8 instead of repairing it
	Logger        *slog.Logger  // Debug diagnostics, discarded when nil
}

// DefaultOptions returns the default extraction options.
// Documents are limited to 10MB, calls time out after 30 seconds,
// invalid UTF-8 is rejected and nothing is logged.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		MaxBufferSize: 10 * 1024 * 1024, // 10MB
		Timeout:       time.Second * 30,
		StrictUTF8:    true,
	}
}

// Log returns the configured logger or a discarding one.
func (o *ExtractionOptions) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
