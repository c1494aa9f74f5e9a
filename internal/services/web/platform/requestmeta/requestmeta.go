// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request scheme is resolved.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered; only set it behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) valid() bool {
	return o.scheme != "" && o.host != "" && o.port != ""
}

// Scheme returns "https" or "http" for the request.
func (p SchemePolicy) Scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether a request should be treated as HTTPS. Cookies set
// on HTTPS requests are marked Secure.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// BaseURL returns scheme://host for the request, or "" when the host is unknown.
func (p SchemePolicy) BaseURL(r *http.Request) string {
	if r == nil {
		return ""
	}
	host := strings.TrimSpace(r.Host)
	if host == "" && r.URL != nil {
		host = strings.TrimSpace(r.URL.Host)
	}
	if host == "" {
		return ""
	}
	return p.Scheme(r) + "://" + host
}

// HasSameOriginProof reports whether Origin, or failing that Referer, names
// the same scheme, host and port as the request.
func (p SchemePolicy) HasSameOriginProof(r *http.Request) bool {
	if r == nil {
		return false
	}
	request := p.requestOrigin(r)
	if request.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	parsed, ok := parseOrigin(claimed)
	if !ok || !parsed.valid() || !request.valid() {
		return false
	}
	return parsed == request
}

func (p SchemePolicy) requestOrigin(r *http.Request) origin {
	scheme := p.Scheme(r)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	scheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	if scheme == "" {
		return origin{}, false
	}
	port := strings.TrimSpace(parsed.Port())
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{
		scheme: scheme,
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   port,
	}, true
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
