package modules

import (
	"github.com/teamboost/gratitudewall/internal/services/web/modules/dashboard"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/landing"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/preferences"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/pricing"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/publicauth"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/publicfeed"
)

// DefaultPublicModules returns the modules served without a session.
func DefaultPublicModules(deps Dependencies) []Module {
	opts := deps.authOptions()
	return []Module{
		landing.New(deps.Catalog),
		pricing.New(),
		publicfeed.New(deps.Catalog),
		publicauth.NewLogin(opts...),
		publicauth.NewAuth(opts...),
		preferences.New(),
	}
}

// DefaultProtectedModules returns the modules mounted behind sign-in.
func DefaultProtectedModules(deps Dependencies) []Module {
	return []Module{
		dashboard.New(deps.Catalog),
	}
}
