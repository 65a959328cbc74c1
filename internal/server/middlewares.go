package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type ctxKey struct{}

var ctxRequestIDKey = &ctxKey{}

// RequestIDHeader is the header carrying the request id, both ways.
const RequestIDHeader = "X-Request-Id"

// RequestID gives every request an id. A valid UUID sent by the client
// is kept; anything else is replaced with a new random one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		w.Header().Set(RequestIDHeader, id.String())
		ctx := context.WithValue(r.Context(), ctxRequestIDKey, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetReqID returns the request id.
func GetReqID(r *http.Request) string {
	if id, ok := r.Context().Value(ctxRequestIDKey).(string); ok {
		return id
	}
	return ""
}

// Logger is a middleware that logs requests.
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&httpLogger{logger})
}

type httpLogger struct {
	logger *slog.Logger
}

func (sl *httpLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	attrs := httpAttrs{
		logger: sl.logger,
		attrs: []slog.Attr{
			slog.String("@id", GetReqID(r)),
			slog.Group("request",
				slog.String("method", r.Method),
				slog.String("path", r.RequestURI),
				slog.String("remote_addr", r.RemoteAddr),
			),
		},
	}
	sl.logger.LogAttrs(r.Context(), slog.LevelDebug, "http "+r.Method, attrs.attrs...)
	return attrs
}

type httpAttrs struct {
	logger *slog.Logger
	attrs  []slog.Attr
}

func (a httpAttrs) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo,
		"http "+strconv.Itoa(status)+" "+http.StatusText(status),
		append(a.attrs,
			slog.Group("response",
				slog.Int("status", status),
				slog.Int("length", bytes),
				slog.Float64("elapsed_ms", float64(elapsed.Nanoseconds())/1000000.0),
			),
		)...,
	)
}

func (a httpAttrs) Panic(v any, _ []byte) {
	a.logger.LogAttrs(context.Background(), slog.LevelError, "http panic", append(a.attrs, slog.Any("panic", v))...)
}

// RateLimit rejects requests beyond limit per second with a 429.
// A zero limit lets everything through.
func RateLimit(limit float64, burst int) func(next http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	l := rate.NewLimiter(rate.Limit(limit), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, r, http.StatusTooManyRequests, errRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
