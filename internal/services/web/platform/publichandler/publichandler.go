// Package publichandler provides a shared base for unauthenticated web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/weberror"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public
// modules. Embed this in handler structs.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a public handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// ResolveRequestViewer resolves viewer state for the request.
// Returns a zero Viewer when no resolver is configured.
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

// IsViewerSignedIn reports whether the current request is authenticated.
func (b Base) IsViewerSignedIn(r *http.Request) bool {
	return b.deps.IsSignedIn(r)
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

// WritePage renders a full public page.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.PublicPage) {
	pagerender.WritePublicPage(w, r, b, page)
}

// WriteNotFound renders the localized 404 page using the public layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b)
}
