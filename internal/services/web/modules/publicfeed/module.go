// Package publicfeed serves the searchable public wall of notes.
package publicfeed

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Module provides public wall routes.
type Module struct {
	catalog *mockdata.Catalog
}

// New returns a public wall module backed by catalog, or the embedded catalog
// when catalog is nil.
func New(catalog *mockdata.Catalog) Module {
	if catalog == nil {
		catalog = mockdata.Default()
	}
	return Module{catalog: catalog}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "publicfeed" }

// Mount wires public wall route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.catalog), publichandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.PublicPrefix, Handler: mux}, nil
}
