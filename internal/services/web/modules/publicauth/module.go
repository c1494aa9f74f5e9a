// Package publicauth serves the login page and the sign-in, callback and
// sign-out endpoints.
package publicauth

import (
	"net/http"
	"strings"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Option configures the auth modules.
type Option func(*settings)

type settings struct {
	provider IdentityProvider
	devLogin bool
	sessions *websession.Codec
	catalog  *mockdata.Catalog
	baseURL  string
}

// WithIdentityProvider enables provider sign-in.
func WithIdentityProvider(p IdentityProvider) Option {
	return func(s *settings) { s.provider = p }
}

// WithDevLogin enables signing in as the first admin when no provider is set.
func WithDevLogin(enabled bool) Option {
	return func(s *settings) { s.devLogin = enabled }
}

// WithSessions sets the session codec. Without it sign-in is unavailable.
func WithSessions(c *websession.Codec) Option {
	return func(s *settings) { s.sessions = c }
}

// WithCatalog sets the user catalog used to map identities to team members.
func WithCatalog(c *mockdata.Catalog) Option {
	return func(s *settings) { s.catalog = c }
}

// WithBaseURL fixes the public origin used for the provider callback URL.
// Without it the origin is derived from each request.
func WithBaseURL(raw string) Option {
	return func(s *settings) { s.baseURL = strings.TrimRight(strings.TrimSpace(raw), "/") }
}

func buildSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// LoginModule serves the login page.
type LoginModule struct {
	settings settings
}

// NewLogin returns the login page module.
func NewLogin(opts ...Option) LoginModule {
	return LoginModule{settings: buildSettings(opts)}
}

// ID returns a stable module identifier.
func (LoginModule) ID() string { return "login" }

// Mount wires the login page.
func (m LoginModule) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerLoginRoutes(mux, m.settings.build(deps))
	return module.Mount{Prefix: routepath.LoginPrefix, Handler: mux}, nil
}

func (s settings) build(deps module.Dependencies) handlers {
	return newHandlers(newService(s.provider, s.devLogin, s.sessions, s.catalog), publichandler.NewBase(deps), s.baseURL)
}

// AuthModule serves the sign-in flow endpoints.
type AuthModule struct {
	settings settings
}

// NewAuth returns the sign-in flow module.
func NewAuth(opts ...Option) AuthModule {
	return AuthModule{settings: buildSettings(opts)}
}

// ID returns a stable module identifier.
func (AuthModule) ID() string { return "auth" }

// Mount wires sign-in, callback and sign-out.
func (m AuthModule) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerAuthRoutes(mux, m.settings.build(deps))
	return module.Mount{Prefix: routepath.AuthPrefix, Handler: mux}, nil
}
