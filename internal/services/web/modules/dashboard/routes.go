package dashboard

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleOverview)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardPrefix+"{$}", h.handleOverview)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardNotes, h.handleNotes)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardTeam, h.handleTeam)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardSettings, h.handleSettings)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardRestPattern, h.WriteNotFound)
}
