// Package httpx holds the response helpers and middleware shared by web
// modules.
package httpx

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/platform/id"
	"github.com/teamboost/gratitudewall/internal/platform/logging"
)

// RequestIDHeader carries the correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler so the first middleware listed runs first. Nil
// middleware are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// RequestID makes sure every request carries a correlation id and echoes it
// on the response. A printable incoming id of sane length is kept.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if !printableID(rid) {
				rid = generateRequestID()
				r.Header.Set(RequestIDHeader, rid)
			}
			w.Header().Set(RequestIDHeader, rid)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDFromRequest returns the correlation id, or "-" when there is none.
func RequestIDFromRequest(r *http.Request) string {
	if r != nil {
		if rid := strings.TrimSpace(r.Header.Get(RequestIDHeader)); rid != "" {
			return rid
		}
	}
	return "-"
}

var fallbackSeq atomic.Uint64

func generateRequestID() string {
	if generated, err := id.NewID(); err == nil {
		return "web-" + generated
	}
	return fmt.Sprintf("web-%d-%d", time.Now().UnixNano(), fallbackSeq.Add(1))
}

func printableID(value string) bool {
	if value == "" || len(value) > maxRequestIDLen {
		return false
	}
	return strings.IndexFunc(value, func(r rune) bool { return r < 0x21 || r > 0x7e }) < 0
}

// RecoverPanic answers 500 when a handler panics and logs the panic with its
// stack. http.ErrAbortHandler is re-raised.
func RecoverPanic(logger *zap.Logger) Middleware {
	logger = logging.OrNop(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				switch recovered {
				case nil:
					return
				case http.ErrAbortHandler:
					panic(recovered)
				}
				logger.Error("panic recovered",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestIDFromRequest(r)),
					zap.Any("panic", recovered),
					zap.StackSkip("stack", 1),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
