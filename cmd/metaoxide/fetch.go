package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/yfedoseev/meta-oxide/internal/errs"
)

var errNotText = errors.New("input is not a text document")

// source is one document to process: a file path, "-" for standard
// input, or a remote URL.
type source struct {
	name  string
	isURL bool
}

// document is a loaded source.
type document struct {
	body        []byte
	contentType string
	url         string // final URL after redirects, for remote sources
}

// load reads src, refusing more than maxSize bytes when maxSize > 0.
func (a *app) load(ctx context.Context, src source, stdin io.Reader, maxSize int) (*document, error) {
	if src.isURL {
		return a.fetch(ctx, src.name, maxSize)
	}

	var r io.Reader
	if src.name == "-" {
		r = stdin
	} else {
		f, err := os.Open(src.name)
		if err != nil {
			return nil, errs.WrapInputError(err, "load", "")
		}
		defer f.Close() //nolint:errcheck
		r = f
	}

	body, err := readLimited(r, maxSize)
	if err != nil {
		return nil, err
	}
	return &document{body: body}, nil
}

// fetch downloads rawURL with the configured user agent.
func (a *app) fetch(ctx context.Context, rawURL string, maxSize int) (*document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errs.WrapInputError(err, "fetch", "invalid URL")
	}
	req.Header.Set("User-Agent", a.cfg.Fetch.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	rsp, err := a.client.Do(req)
	if err != nil {
		return nil, errs.WrapInputError(err, "fetch", "")
	}
	defer rsp.Body.Close() //nolint:errcheck

	if rsp.StatusCode/100 != 2 {
		return nil, errs.WrapInputError(fmt.Errorf("invalid response status (%d)", rsp.StatusCode), "fetch", rawURL)
	}

	body, err := readLimited(rsp.Body, maxSize)
	if err != nil {
		return nil, err
	}

	doc := &document{
		body:        body,
		contentType: rsp.Header.Get("Content-Type"),
		url:         rawURL,
	}
	if rsp.Request != nil && rsp.Request.URL != nil {
		doc.url = rsp.Request.URL.String()
	}
	return doc, nil
}

func readLimited(r io.Reader, maxSize int) ([]byte, error) {
	if maxSize > 0 {
		r = io.LimitReader(r, int64(maxSize)+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.WrapInputError(err, "read", "")
	}
	if maxSize > 0 && len(body) > maxSize {
		return nil, errs.WrapInputError(errs.ErrDocumentLarge, "read", "")
	}
	return body, nil
}

// checkText refuses binary input such as images or archives.
func checkText(body []byte) error {
	mtype := mimetype.Detect(body)
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return errs.WrapInputError(errNotText, "checkText", mtype.String())
}

// reader returns the body as a reader.
func (d *document) reader() io.Reader {
	return bytes.NewReader(d.body)
}
