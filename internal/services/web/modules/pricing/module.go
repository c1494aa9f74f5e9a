// Package pricing serves the plan comparison page.
package pricing

import (
	"net/http"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Module provides pricing routes.
type Module struct{}

// New returns a pricing module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pricing" }

// Mount wires pricing route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.PricingPrefix, Handler: mux}, nil
}
