package preferences

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.PreferencesTheme, h.sameOrigin(h.handleTheme))
	mux.HandleFunc(http.MethodPost+" "+routepath.PreferencesSidebar, h.sameOrigin(h.handleSidebar))
	mux.HandleFunc(http.MethodPost+" "+routepath.PreferencesLanguage, h.sameOrigin(h.handleLanguage))
	mux.HandleFunc(routepath.PreferencesPrefix+"{rest...}", h.WriteNotFound)
}
