// Package landing serves the marketing home page and the public 404 fallback.
package landing

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Module provides the root route.
type Module struct {
	catalog *mockdata.Catalog
}

// New returns a landing module backed by catalog, or the embedded catalog
// when catalog is nil.
func New(catalog *mockdata.Catalog) Module {
	if catalog == nil {
		catalog = mockdata.Default()
	}
	return Module{catalog: catalog}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Mount wires landing route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.catalog), publichandler.NewBase(deps))
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
