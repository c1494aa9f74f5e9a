package landing

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{rest...}", h.WriteNotFound)
}
