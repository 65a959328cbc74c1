package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yfedoseev/meta-oxide/extractor"
	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/internal/metadata"
	"github.com/yfedoseev/meta-oxide/types"
)

var (
	errRateLimited  = errors.New("rate limit exceeded")
	errBodyTooLarge = errors.New("request body too large")
)

type errorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	ID     string `json:"request_id,omitempty"`
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok") //nolint:errcheck
}

func (s *Server) formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, extractor.Formats())
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	format, err := extractor.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	doc, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.ext.ExtractFormat(format, doc, r.URL.Query().Get("base_url"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.items.WithLabelValues(string(format)).Add(float64(countItems(res)))
	writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) manifest(w http.ResponseWriter, r *http.Request) {
	doc, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	m, err := metadata.ParseManifest([]byte(doc), r.URL.Query().Get("base_url"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, m)
}

// readBody returns the request body decoded to UTF-8.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	body := io.Reader(r.Body)
	if s.maxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}
	doc, err := dom.DecodeReader(body, r.Header.Get("Content-Type"))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", errs.WrapInputError(errBodyTooLarge, "readBody", "")
		}
		return "", err
	}
	return doc, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	var e *errs.Error
	if errors.As(err, &e) {
		s.metrics.failures.WithLabelValues(string(e.Type)).Inc()
	}
	s.logger.Debug("request failed", slog.String("@id", GetReqID(r)), slog.Any("err", err))
	writeError(w, r, status, err)
}

// statusOf maps an error to an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrDocumentLarge), errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.ErrUnknownFormat):
		return http.StatusNotFound
	case errs.IsTimeoutError(err):
		return http.StatusGatewayTimeout
	case errs.IsInputError(err), errs.IsValidationError(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, errorResponse{
		Status: status,
		Error:  err.Error(),
		ID:     GetReqID(r),
	})
}

func writeJSON(w http.ResponseWriter, _ *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v) //nolint:errcheck
}

// countItems returns how many top-level items or records res holds.
func countItems(res any) int {
	switch v := res.(type) {
	case []*types.Item:
		return len(v)
	case []map[string]any:
		return len(v)
	case map[string][]*types.Item:
		seen := map[*types.Item]bool{}
		for _, items := range v {
			for _, it := range items {
				seen[it] = true
			}
		}
		return len(seen)
	case *types.Result:
		return len(v.Microdata) + len(v.RDFa) + len(v.JSONLD) + countItems(v.Microformats)
	}
	return 1
}
