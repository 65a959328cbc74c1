// Package dom is the tolerant HTML tree facility the interpreters walk.
// It wraps golang.org/x/net/html for parsing and github.com/go-shiori/dom
// for node access.
package dom

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/yfedoseev/meta-oxide/internal/errs"
)

// Validate checks caller input before any tree walk. It returns the
// document to parse, which differs from s only when strict is false and
// s held invalid UTF-8 sequences (they are replaced with U+FFFD).
func Validate(s string, maxSize int, strict bool) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.WrapInputError(errs.ErrNoDocument, "Validate", "")
	}
	if maxSize > 0 && len(s) > maxSize {
		return "", errs.WrapInputError(errs.ErrDocumentLarge, "Validate", "")
	}
	if !utf8.ValidString(s) {
		if strict {
			return "", errs.WrapInputError(errs.ErrInvalidUTF8, "Validate", "")
		}
		s = strings.ToValidUTF8(s, "�")
	}
	return s, nil
}

// Parse parses s into a document tree. The HTML5 parsing algorithm
// recovers from any malformed input, so an error only comes from the
// reader and cannot happen for a string.
func Parse(s string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, errs.WrapParseError(err, "Parse", "failed to parse HTML")
	}
	return doc, nil
}

// DecodeReader reads a whole document from r and converts it to UTF-8.
// The encoding comes from contentType when it names a charset, otherwise
// it is sniffed from the first kilobyte (BOM, meta charset, heuristics).
func DecodeReader(r io.Reader, contentType string) (string, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", errs.WrapInputError(err, "DecodeReader", "failed to read input")
	}

	e, _, _ := charset.DetermineEncoding(peek, contentType)
	b, err := io.ReadAll(transform.NewReader(br, e.NewDecoder()))
	if err != nil {
		return "", errs.WrapInputError(err, "DecodeReader", "failed to decode input")
	}
	return string(b), nil
}
