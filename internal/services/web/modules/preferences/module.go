// Package preferences stores per-browser UI choices posted from page chrome.
package preferences

import (
	"net/http"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Module provides preference update routes.
type Module struct{}

// New returns a preferences module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "preferences" }

// Mount wires preference route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(publichandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.PreferencesPrefix, Handler: mux}, nil
}
