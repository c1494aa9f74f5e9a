// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page. Signed-in viewers on dashboard
// paths keep the app shell; everyone else gets the public layout.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	page := pagerender.PageContext(nil, r, resolver, "")
	title := webtemplates.ErrorPageTitle(statusCode, page.Loc)
	fragment := webtemplates.ErrorState(statusCode, page.Loc)

	if resolver != nil && r != nil && r.URL != nil && routepath.IsDashboardPath(r.URL.Path) && resolver.ResolveRequestViewer(r).SignedIn() {
		if err := pagerender.WriteModulePage(w, r, resolver, pagerender.ModulePage{
			Title:      title,
			StatusCode: statusCode,
			Fragment:   fragment,
		}); err != nil {
			http.Error(w, PublicMessage(page.Loc, err), statusCode)
		}
		return
	}
	pagerender.WritePublicPage(w, r, resolver, pagerender.PublicPage{
		Title:      title,
		StatusCode: statusCode,
		Body:       fragment,
	})
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolver pagerender.RequestResolver) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolver)
		return
	}
	page := pagerender.PageContext(nil, r, resolver, "")
	http.Error(w, PublicMessage(page.Loc, err), statusCode)
}
