package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/sessioncookie"
)

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func protectedStub() stubModule {
	return stubModule{id: "dashboard", mount: module.Mount{Prefix: "/dashboard/", Handler: http.HandlerFunc(noContent)}}
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(noContent)}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: http.HandlerFunc(noContent)}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsInvalidPublicModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "missing leading slash", prefix: "pricing/x"},
		{name: "missing trailing slash", prefix: "/pricing/x"},
		{name: "contains surrounding whitespace", prefix: "/pricing/x "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				PublicModules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: http.HandlerFunc(noContent)}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, tc.prefix) || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModules(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{PublicModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil public module error")
	}
	if _, err := Compose(ComposeInput{ProtectedModules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil protected module error")
	}
}

func TestComposePropagatesMountErrors(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}},
	})
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Fatalf("Compose() error = %v, want mount error naming module", err)
	}
}

func TestComposeRedirectsAnonymousDashboardRequestsToLogin(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:     func(*http.Request) bool { return false },
		ProtectedModules: []module.Module{protectedStub()},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		target   string
		location string
	}{
		{target: "/dashboard", location: "/login"},
		{target: "/dashboard/", location: "/login"},
		{target: "/dashboard/notes?view=table", location: "/login?next=%2Fdashboard%2Fnotes%3Fview%3Dtable"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want %d", tc.target, rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != tc.location {
			t.Fatalf("%s Location = %q, want %q", tc.target, got, tc.location)
		}
	}
}

func TestComposeRedirectsAnonymousHTMXRequestWithHeader(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{ProtectedModules: []module.Module{protectedStub()}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/team", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Redirect"); got != "/login?next=%2Fdashboard%2Fteam" {
		t.Fatalf("HX-Redirect = %q", got)
	}
	if got := rr.Header().Get("Location"); got != "" {
		t.Fatalf("Location = %q, want empty", got)
	}
}

func TestComposeProtectsSlashlessDashboardBeforePublicFallback(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "landing", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			})}},
		},
		ProtectedModules: []module.Module{protectedStub()},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
}

func TestComposeMountsPublicModulesWithoutAuth(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "pricing", mount: module.Mount{Prefix: "/pricing/", Handler: http.HandlerFunc(noContent)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, target := range []string{"/pricing", "/pricing/"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusNoContent)
		}
	}
}

func TestComposePassesDependenciesToModules(t *testing.T) {
	t.Parallel()

	var got module.Dependencies
	capture := captureModule{capture: &got}
	_, err := Compose(ComposeInput{
		Dependencies:  module.Dependencies{SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true}},
		PublicModules: []module.Module{capture},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !got.SchemePolicy.TrustForwardedProto {
		t.Fatalf("module did not receive dependencies: %+v", got.SchemePolicy)
	}
}

func TestComposeSameOriginChecksForCookieMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		host   string
		origin string
		proto  string
		policy requestmeta.SchemePolicy
		want   int
	}{
		{name: "missing proof", target: "/dashboard/notes", want: http.StatusForbidden},
		{name: "same origin", target: "https://app.example.test/dashboard/notes", host: "app.example.test", origin: "https://app.example.test", want: http.StatusNoContent},
		{name: "scheme differs", target: "https://app.example.test/dashboard/notes", host: "app.example.test", origin: "http://app.example.test", want: http.StatusForbidden},
		{name: "forwarded proto untrusted", target: "http://app.example.test/dashboard/notes", host: "app.example.test", origin: "https://app.example.test", proto: "https", want: http.StatusForbidden},
		{name: "forwarded proto trusted", target: "http://app.example.test/dashboard/notes", host: "app.example.test", origin: "https://app.example.test", proto: "https", policy: requestmeta.SchemePolicy{TrustForwardedProto: true}, want: http.StatusNoContent},
		{name: "origin omits port", target: "https://app.example.test:8443/dashboard/notes", host: "app.example.test:8443", origin: "https://app.example.test", want: http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, err := Compose(ComposeInput{
				Dependencies:     module.Dependencies{SchemePolicy: tc.policy},
				AuthRequired:     func(*http.Request) bool { return true },
				ProtectedModules: []module.Module{protectedStub()},
			})
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			if tc.host != "" {
				req.Host = tc.host
			}
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			req.AddCookie(&http.Cookie{Name: sessioncookie.Session.Name, Value: "token"})
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestComposeRejectsProtectedModuleOutsideDashboardPrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		ProtectedModules: []module.Module{
			stubModule{id: "bad", mount: module.Mount{Prefix: "/public/", Handler: http.HandlerFunc(noContent)}},
		},
	})
	if err == nil {
		t.Fatalf("expected protected module prefix policy error")
	}
}

func TestComposeRejectsPublicModuleInsideDashboardPrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		PublicModules: []module.Module{
			stubModule{id: "bad", mount: module.Mount{Prefix: "/dashboard/bad/", Handler: http.HandlerFunc(noContent)}},
		},
	})
	if err == nil {
		t.Fatalf("expected public module prefix policy error")
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return s.mount, s.err
}

type captureModule struct {
	capture *module.Dependencies
}

func (captureModule) ID() string { return "capture" }

func (c captureModule) Mount(deps module.Dependencies) (module.Mount, error) {
	*c.capture = deps
	return module.Mount{Prefix: "/capture/", Handler: http.HandlerFunc(noContent)}, nil
}
