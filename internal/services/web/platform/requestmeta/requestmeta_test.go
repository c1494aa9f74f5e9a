package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newPost(target string, header map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	for key, value := range header {
		req.Header.Set(key, value)
	}
	return req
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "matching origin",
			req:  newPost("http://localhost:3000/preferences/theme", map[string]string{"Origin": "http://localhost:3000"}),
			want: true,
		},
		{
			name: "matching referer when origin absent",
			req:  newPost("http://localhost:3000/auth/signout", map[string]string{"Referer": "http://localhost:3000/dashboard"}),
			want: true,
		},
		{
			name: "different host",
			req:  newPost("http://localhost:3000/auth/signout", map[string]string{"Origin": "http://evil.example"}),
			want: false,
		},
		{
			name: "different port",
			req:  newPost("http://localhost:3000/auth/signout", map[string]string{"Origin": "http://localhost:4000"}),
			want: false,
		},
		{
			name: "default ports are implied",
			req:  newPost("https://teamboost.example/auth/signout", map[string]string{"Origin": "https://teamboost.example:443"}),
			want: true,
		},
		{
			name: "no proof",
			req:  newPost("http://localhost:3000/auth/signout", nil),
			want: false,
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: newPost("https://teamboost.example/auth/signout", map[string]string{
				"Origin":            "http://teamboost.example",
				"X-Forwarded-Proto": "http",
			}),
			want: false,
		},
		{
			name: "trusted forwarded proto is used",
			req: newPost("https://teamboost.example/auth/signout", map[string]string{
				"Origin":            "http://teamboost.example",
				"X-Forwarded-Proto": "http",
			}),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.policy.HasSameOriginProof(tc.req); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSchemeAndBaseURL(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Host = "localhost:3000"
	if got := (SchemePolicy{}).Scheme(req); got != "http" {
		t.Fatalf("Scheme = %q, want http", got)
	}
	if got := (SchemePolicy{}).BaseURL(req); got != "http://localhost:3000" {
		t.Fatalf("BaseURL = %q", got)
	}

	req.TLS = &tls.ConnectionState{}
	if !(SchemePolicy{}).IsHTTPS(req) {
		t.Fatal("TLS request not treated as HTTPS")
	}

	if (SchemePolicy{}).HasSameOriginProof(nil) || (SchemePolicy{}).BaseURL(nil) != "" {
		t.Fatal("nil request handling mismatch")
	}
}
