// Package extractor runs the structured data extractors over HTML documents.
// Each call validates and parses the document once, then hands the tree
// to the requested interpreters under a per-call timeout.
package extractor

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/internal/microdata"
	"github.com/yfedoseev/meta-oxide/internal/microformats"
	"github.com/yfedoseev/meta-oxide/internal/rdfa"
	"github.com/yfedoseev/meta-oxide/types"
)

// Extractor defines the interface for structured data extraction.
// An empty baseURL falls back to the configured default; when both are
// empty relative URLs are kept as written.
type Extractor interface {
	// ExtractMicroformats returns Microformats2 items keyed by root type.
	ExtractMicroformats(html, baseURL string) (map[string][]*types.Item, error)

	// ExtractRDFa returns the top-level RDFa items in document order.
	ExtractRDFa(html, baseURL string) ([]*types.Item, error)

	// ExtractMicrodata returns the top-level Microdata items in document order.
	ExtractMicrodata(html, baseURL string) ([]*types.Item, error)

	// ExtractAll runs every extractor and returns the unified result.
	ExtractAll(html, baseURL string) (*types.Result, error)

	// ExtractFormat runs a single extractor selected by format.
	ExtractFormat(format Format, html, baseURL string) (any, error)

	// ExtractAllFromReader decodes r to UTF-8 using contentType and any
	// in-document charset declaration, then behaves like ExtractAll.
	ExtractAllFromReader(r io.Reader, contentType, baseURL string) (*types.Result, error)
}

// Option represents a function that modifies ExtractionOptions.
type Option func(*types.ExtractionOptions)

// WithBaseURL sets the base URL used when a call passes none.
func WithBaseURL(baseURL string) Option {
	return func(o *types.ExtractionOptions) {
		o.BaseURL = baseURL
	}
}

// WithMaxBufferSize sets the maximum accepted document size in bytes.
// Zero or a negative size disables the check.
func WithMaxBufferSize(size int) Option {
	return func(o *types.ExtractionOptions) {
		o.MaxBufferSize = size
	}
}

// WithTimeout sets the timeout duration for one extraction call.
// Zero or a negative duration waits indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(o *types.ExtractionOptions) {
		o.Timeout = timeout
	}
}

// WithStrictUTF8 controls whether invalid UTF-8 input is rejected (the
// default) or repaired with replacement characters.
func WithStrictUTF8(strict bool) Option {
	return func(o *types.ExtractionOptions) {
		o.StrictUTF8 = strict
	}
}

// WithLogger sets the logger that receives debug diagnostics about
// skipped input, such as invalid JSON-LD blocks or orphan properties.
func WithLogger(logger *slog.Logger) Option {
	return func(o *types.ExtractionOptions) {
		o.Logger = logger
	}
}

type metaExtractor struct {
	options types.ExtractionOptions
}

// New creates a new Extractor with the given options.
// It starts with DefaultOptions and applies each option in order.
func New(opts ...Option) Extractor {
	options := types.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &metaExtractor{options: options}
}

// ExtractMicroformats parses doc and returns its Microformats2 items
// grouped by root type. Relative URLs resolve against baseURL, or the
// configured base URL when baseURL is empty.
func (e *metaExtractor) ExtractMicroformats(doc, baseURL string) (map[string][]*types.Item, error) {
	return run(e, "ExtractMicroformats", doc, baseURL, microformats.Parse)
}

// ExtractRDFa parses doc and returns its top-level RDFa items in
// document order. Blank node subjects restart at _:b0 on every call.
func (e *metaExtractor) ExtractRDFa(doc, baseURL string) ([]*types.Item, error) {
	return run(e, "ExtractRDFa", doc, baseURL, rdfa.Parse)
}

// ExtractMicrodata parses doc and returns its top-level Microdata items
// in document order, itemref targets included.
func (e *metaExtractor) ExtractMicrodata(doc, baseURL string) ([]*types.Item, error) {
	return run(e, "ExtractMicrodata", doc, baseURL, microdata.Parse)
}

// ExtractAll parses doc once and runs every scanner over the same tree.
// Formats that found nothing are left empty in the Result.
func (e *metaExtractor) ExtractAll(doc, baseURL string) (*types.Result, error) {
	return run(e, "ExtractAll", doc, baseURL, func(root *html.Node, base string, logger *slog.Logger) *types.Result {
		return Unify(Collect(root, base, logger))
	})
}

// ExtractFormat runs the scanner for a single format. An unknown format
// is rejected before doc is parsed.
func (e *metaExtractor) ExtractFormat(format Format, doc, baseURL string) (any, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	type outcome struct {
		v   any
		err error
	}
	res, err := run(e, "ExtractFormat", doc, baseURL, func(root *html.Node, base string, logger *slog.Logger) outcome {
		v, err := Extract(format, root, base, logger)
		return outcome{v, err}
	})
	if err != nil {
		return nil, err
	}
	return res.v, res.err
}

// ExtractAllFromReader reads at most MaxBufferSize+1 bytes from r,
// decodes them using the charset from contentType or the document itself,
// and passes the result to ExtractAll.
func (e *metaExtractor) ExtractAllFromReader(r io.Reader, contentType, baseURL string) (*types.Result, error) {
	if r == nil {
		return nil, errs.WrapInputError(errs.ErrNoDocument, "ExtractAllFromReader", "nil reader")
	}
	if e.options.MaxBufferSize > 0 {
		r = io.LimitReader(r, int64(e.options.MaxBufferSize)+1)
	}
	doc, err := dom.DecodeReader(r, contentType)
	if err != nil {
		return nil, err
	}
	return e.ExtractAll(doc, baseURL)
}

// run validates and parses doc, then applies fn to the tree. The parse
// and fn share the configured timeout. A panic inside fn is reported as
// an extraction error rather than crashing the caller.
func run[T any](e *metaExtractor, name, doc, baseURL string, fn func(*html.Node, string, *slog.Logger) T) (T, error) {
	var zero T

	doc, err := dom.Validate(doc, e.options.MaxBufferSize, e.options.StrictUTF8)
	if err != nil {
		return zero, err
	}
	if baseURL == "" {
		baseURL = e.options.BaseURL
	}
	logger := e.options.Log().With("op", name)

	type result struct {
		v   T
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- result{err: errs.WrapExtractionError(fmt.Errorf("panic: %v", r), name, "extraction aborted")}
			}
		}()

		root, err := dom.Parse(doc)
		if err != nil {
			resultCh <- result{err: err}
			return
		}
		resultCh <- result{v: fn(root, baseURL, logger)}
	}()

	if e.options.Timeout <= 0 {
		r := <-resultCh
		return r.v, r.err
	}

	select {
	case r := <-resultCh:
		return r.v, r.err
	case <-time.After(e.options.Timeout):
		return zero, errs.WrapTimeoutError(errs.ErrTimeout, name, fmt.Sprintf("extraction timed out after %v", e.options.Timeout))
	}
}
