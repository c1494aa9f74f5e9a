package publicfeed

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Public, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PublicPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.PublicPrefix+"{rest...}", h.WriteNotFound)
}
