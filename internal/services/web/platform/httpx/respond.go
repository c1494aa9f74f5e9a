package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
)

const (
	htmxRequestHeader  = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
)

var errNoWriter = errors.New("response writer is required")

// RequestContext returns r's context, or Background for a nil request.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether r was issued by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxRequestHeader) == "true"
}

// WriteHTML writes an HTML body with status.
func WriteHTML(w http.ResponseWriter, status int, body []byte) error {
	if w == nil {
		return errNoWriter
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(body)
	return err
}

// WriteText writes a plain-text body with status.
func WriteText(w http.ResponseWriter, status int, body string) error {
	if w == nil {
		return errNoWriter
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	return err
}

// WriteRedirect sends the client to location. htmx requests get an
// HX-Redirect header; everything else gets 303 so form posts land on a GET.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	switch {
	case w == nil:
		return
	case IsHTMXRequest(r):
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
	case r == nil:
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusSeeOther)
	default:
		http.Redirect(w, r, location, http.StatusSeeOther)
	}
}
