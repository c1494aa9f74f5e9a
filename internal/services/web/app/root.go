package app

import (
	"errors"
	"net/http"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
)

// RootConfig captures the module groups mounted at "/" and the dependencies
// they share.
type RootConfig struct {
	Dependencies module.Dependencies
	// SignedIn gates protected modules. Nil falls back to
	// Dependencies.IsSignedIn.
	SignedIn         func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// BuildRootHandler mounts public modules as-is and protected modules behind
// the sign-in gate.
func BuildRootHandler(cfg RootConfig) (http.Handler, error) {
	if len(cfg.PublicModules) == 0 && len(cfg.ProtectedModules) == 0 {
		return nil, errors.New("at least one module is required")
	}
	deps := cfg.Dependencies
	if deps.ResolveLanguage == nil {
		deps.ResolveLanguage = i18n.ResolveLanguage
	}
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	signedIn := cfg.SignedIn
	if signedIn == nil {
		signedIn = deps.IsSignedIn
	}
	return Compose(ComposeInput{
		Dependencies:     deps,
		AuthRequired:     signedIn,
		PublicModules:    cfg.PublicModules,
		ProtectedModules: cfg.ProtectedModules,
	})
}
