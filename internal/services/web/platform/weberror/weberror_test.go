package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func TestWriteModuleErrorRendersPublicErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{`data-status="404"`, `<body class="marketing">`, "Oops. I think we floated too far."} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
}

func TestWriteAppErrorKeepsAppShellForSignedInDashboardViewer(t *testing.T) {
	t.Parallel()

	deps := module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer { return module.Viewer{UserID: "u1", DisplayName: "Alice"} },
	}
	req := httptest.NewRequest(http.MethodGet, routepath.DashboardPrefix+"missing", nil)
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusNotFound, deps)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body := rr.Body.String(); !strings.Contains(body, `<body class="app">`) {
		t.Fatalf("body = %q, want app shell", body)
	}
}

func TestWriteAppErrorCoercesNonErrorStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Something went wrong") {
		t.Fatalf("body = %q, want generic server error copy", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, routepath.DashboardSettings, nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.MustParse("en-US"))
	err := apperrors.EK(apperrors.KindInvalidInput, "errors.preferences.invalid_theme", "theme neon")
	if got := PublicMessage(loc, err); got != "Choose system, light, or dark." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	ptBR := message.NewPrinter(language.MustParse("pt-BR"))
	if got := PublicMessage(ptBR, err); got != "Escolha sistema, claro ou escuro." {
		t.Fatalf("PublicMessage(pt-BR) = %q", got)
	}
	if got := PublicMessage(nil, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}
