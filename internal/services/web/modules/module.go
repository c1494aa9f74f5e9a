// Package modules defines web module registry helpers.
package modules

import (
	"github.com/teamboost/gratitudewall/internal/mockdata"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/publicauth"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared services required to compose the web
// module registry. Request-scoped resolvers are handed to modules separately
// at mount time through module.Dependencies.
type Dependencies struct {
	Catalog *mockdata.Catalog

	// Sign-in wiring. A nil IdentityProvider disables Microsoft Entra ID;
	// DevLogin then decides whether the dev sign-in button is offered.
	Sessions         *websession.Codec
	IdentityProvider publicauth.IdentityProvider
	DevLogin         bool
	BaseURL          string
}

func (d Dependencies) authOptions() []publicauth.Option {
	return []publicauth.Option{
		publicauth.WithCatalog(d.Catalog),
		publicauth.WithSessions(d.Sessions),
		publicauth.WithIdentityProvider(d.IdentityProvider),
		publicauth.WithDevLogin(d.DevLogin),
		publicauth.WithBaseURL(d.BaseURL),
	}
}
