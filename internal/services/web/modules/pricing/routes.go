package pricing

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Pricing, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PricingPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.PricingPrefix+"{rest...}", h.WriteNotFound)
}
