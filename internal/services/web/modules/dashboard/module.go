// Package dashboard serves the signed-in app: overview, notes wall, team and
// settings.
package dashboard

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/modulehandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Module provides authenticated dashboard routes.
type Module struct {
	gateway NotesGateway
}

// New returns a dashboard module reading from catalog. A nil catalog mounts
// the module with every data page reporting unavailable.
func New(catalog *mockdata.Catalog) Module {
	if catalog == nil {
		return Module{}
	}
	return Module{gateway: NewCatalogGateway(catalog)}
}

// NewWithGateway returns a dashboard module backed by gateway.
func NewWithGateway(gateway NotesGateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), modulehandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
