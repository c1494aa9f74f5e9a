// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules (those mounted under /dashboard/) share common handler
// infrastructure for user resolution, localization, page rendering, and error
// handling. This package extracts that shared scaffold so modules embed it
// rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/webctx"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/weberror"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by protected module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// NewTestBase builds a handler base with a fixed signed-in viewer.
func NewTestBase(viewer module.Viewer) Base {
	return Base{deps: module.Dependencies{
		ResolveViewer:   func(*http.Request) module.Viewer { return viewer },
		ResolveUserID:   func(*http.Request) string { return viewer.UserID },
		ResolveLanguage: func(*http.Request) string { return "" },
	}}
}

// ResolveRequestViewer resolves app chrome viewer state for a request.
func (b Base) ResolveRequestViewer(r *http.Request) module.Viewer {
	return b.deps.ResolveRequestViewer(r)
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	return b.deps.ResolveRequestLanguage(r)
}

// ResolveRequestPreferences returns the browser's UI preferences.
func (b Base) ResolveRequestPreferences(r *http.Request) uiprefs.Preferences {
	return b.deps.ResolveRequestPreferences(r)
}

// RequestSchemePolicy returns the cookie and origin policy.
func (b Base) RequestSchemePolicy() requestmeta.SchemePolicy {
	return b.deps.RequestSchemePolicy()
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	return b.deps.Log()
}

// Now returns the current time from the configured clock.
func (b Base) Now() time.Time {
	return b.deps.Clock()()
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.deps.ResolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// RequestUserID extracts the authenticated user ID from the request.
func (b Base) RequestUserID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if b.deps.ResolveUserID != nil {
		return strings.TrimSpace(b.deps.ResolveUserID(r))
	}
	return strings.TrimSpace(b.deps.ResolveRequestViewer(r).UserID)
}

// RequestContextAndUserID returns a context enriched with the user ID and
// the raw user ID string.
func (b Base) RequestContextAndUserID(r *http.Request) (context.Context, string) {
	ctx := webctx.WithResolvedUserID(r, b.RequestUserID)
	return ctx, b.RequestUserID(r)
}

// RequestLocaleTag returns the resolved language tag for the request.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r, b.deps.ResolveLanguage)
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// header, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.AppMainHeader,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Fragment:   fragment,
	}); err != nil {
		b.Logger().Warn("render module page", zap.String("path", r.URL.Path), zap.Error(err))
		b.WriteError(w, r, err)
	}
}
