package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	flashnotice "github.com/teamboost/gratitudewall/internal/services/web/platform/flash"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func signedIn() module.Dependencies {
	return module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{UserID: "u1", DisplayName: "Alice Chen", Email: "alice@teamboost.com"}
		},
	}
}

func setFlashCookie(t *testing.T, req *http.Request, notice flashnotice.Notice) {
	t.Helper()
	rr := httptest.NewRecorder()
	flashnotice.Write(rr, httptest.NewRequest(http.MethodPost, "/", nil), notice, requestmeta.SchemePolicy{})
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DashboardSettings, nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, signedIn(), ModulePage{
		Title:      "Settings",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DashboardSettings, nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, signedIn(), ModulePage{
		Title:      "Settings",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`, "Alice Chen", "Settings | TeamBoost"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DashboardSettings, nil)
	setFlashCookie(t, req, flashnotice.NoticeSuccess("web.preferences.notice_saved"))
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, signedIn(), ModulePage{
		Title:    "Settings",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "toast-success") || !strings.Contains(body, "Preferences saved.") {
		t.Fatalf("body missing toast: %q", body)
	}
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, flashnotice.CookieName+"=") {
		t.Fatalf("Set-Cookie = %q, want flash cookie cleared", got)
	}
}

func TestWriteModulePageHTMXDoesNotConsumeFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DashboardSettings, nil)
	req.Header.Set("HX-Request", "true")
	setFlashCookie(t, req, flashnotice.NoticeSuccess("web.preferences.notice_saved"))
	rr := httptest.NewRecorder()

	if err := WriteModulePage(rr, req, signedIn(), ModulePage{Fragment: textComponent("<p>x</p>")}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Set-Cookie = %q, want none for htmx request", got)
	}
}

func TestWritePublicPageLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bare      bool
		wantClass string
	}{
		{name: "marketing", wantClass: `<body class="marketing">`},
		{name: "bare", bare: true, wantClass: `<body class="auth">`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, routepath.Login, nil)
			rr := httptest.NewRecorder()
			WritePublicPage(rr, req, module.Dependencies{}, PublicPage{
				Title:      "Login",
				StatusCode: http.StatusServiceUnavailable,
				Bare:       tc.bare,
				Body:       textComponent(`<p id="public-body">hi</p>`),
			})
			if rr.Code != http.StatusServiceUnavailable {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tc.wantClass) || !strings.Contains(body, `id="public-body"`) {
				t.Fatalf("body = %q", body)
			}
		})
	}
}

func TestPageContextReadsRequestState(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/public?q=coffee&lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	page := PageContext(rr, req, signedIn(), "Wall")
	if page.Lang != "pt-BR" || page.CurrentPath != "/public" || page.CurrentQuery != "q=coffee&lang=pt-BR" {
		t.Fatalf("page = %+v", page)
	}
	if !page.SignedIn {
		t.Fatal("SignedIn = false, want true")
	}
	if page.Year < 2024 {
		t.Fatalf("Year = %d", page.Year)
	}
}
