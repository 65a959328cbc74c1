package metaoxide

import (
	"log/slog"
	"time"

	"github.com/yfedoseev/meta-oxide/extractor"
	"github.com/yfedoseev/meta-oxide/internal/metadata"
	"github.com/yfedoseev/meta-oxide/types"
)

// Extractor defines the interface for structured data extraction.
type Extractor = extractor.Extractor

// Option represents a function that modifies ExtractionOptions.
type Option = extractor.Option

// Format names one extraction output.
type Format = extractor.Format

// Supported formats.
const (
	FormatAll          = extractor.FormatAll
	FormatMicroformats = extractor.FormatMicroformats
	FormatRDFa         = extractor.FormatRDFa
	FormatMicrodata    = extractor.FormatMicrodata
	FormatMeta         = extractor.FormatMeta
	FormatOpenGraph    = extractor.FormatOpenGraph
	FormatTwitter      = extractor.FormatTwitter
	FormatJSONLD       = extractor.FormatJSONLD
	FormatDublinCore   = extractor.FormatDublinCore
	FormatRelLinks     = extractor.FormatRelLinks
	FormatOEmbed       = extractor.FormatOEmbed
	FormatManifest     = extractor.FormatManifest
)

// New creates a new Extractor with the given options.
func New(opts ...Option) Extractor {
	return extractor.New(opts...)
}

// WithBaseURL sets the base URL used when a call passes none.
func WithBaseURL(baseURL string) Option {
	return extractor.WithBaseURL(baseURL)
}

// WithMaxBufferSize sets the maximum accepted document size in bytes.
func WithMaxBufferSize(size int) Option {
	return extractor.WithMaxBufferSize(size)
}

// WithTimeout sets the timeout duration for one extraction call.
func WithTimeout(timeout time.Duration) Option {
	return extractor.WithTimeout(timeout)
}

// WithStrictUTF8 controls whether invalid UTF-8 input is rejected.
func WithStrictUTF8(strict bool) Option {
	return extractor.WithStrictUTF8(strict)
}

// WithLogger sets the logger that receives debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return extractor.WithLogger(logger)
}

// ParseFormat reads a format name such as "microdata" or "json-ld".
func ParseFormat(s string) (Format, error) {
	return extractor.ParseFormat(s)
}

var std = New()

// ExtractMicroformats returns the Microformats2 items of html keyed by
// root type, using the default options. An item with several root types
// is listed under each one.
func ExtractMicroformats(html, baseURL string) (map[string][]*Item, error) {
	return std.ExtractMicroformats(html, baseURL)
}

// ExtractRDFa returns the top-level RDFa items of html in document order.
func ExtractRDFa(html, baseURL string) ([]*Item, error) {
	return std.ExtractRDFa(html, baseURL)
}

// ExtractMicrodata returns the top-level Microdata items of html in
// document order.
func ExtractMicrodata(html, baseURL string) ([]*Item, error) {
	return std.ExtractMicrodata(html, baseURL)
}

// ExtractAll runs every extractor over html and returns the unified result.
func ExtractAll(html, baseURL string) (*Result, error) {
	return std.ExtractAll(html, baseURL)
}

// ParseManifest parses a web app manifest document. Relative URLs in it
// are resolved against baseURL, normally the manifest's own URL.
func ParseManifest(data []byte, baseURL string) (*WebAppManifest, error) {
	return metadata.ParseManifest(data, baseURL)
}

// ParseOEmbed parses an oEmbed provider response in the given format.
func ParseOEmbed(body []byte, format OEmbedFormat) (*OEmbedResponse, error) {
	return metadata.ParseOEmbed(body, format)
}

// FilterJSONLD returns the JSON-LD objects whose @type contains t.
func FilterJSONLD(objects []map[string]any, t string) ([]map[string]any, error) {
	return metadata.FilterByType(objects, t)
}

// FindItems walks items, nested ones included, and returns every item
// declaring type t.
func FindItems(items []*Item, t string) []*Item {
	return types.Find(items, t)
}
