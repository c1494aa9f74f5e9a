package publicauth

import (
	"context"
	"crypto/subtle"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/platform/id"
	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

const avatarFallbackBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

type service struct {
	provider IdentityProvider
	devLogin bool
	sessions *websession.Codec
	catalog  *mockdata.Catalog
}

func newService(provider IdentityProvider, devLogin bool, sessions *websession.Codec, catalog *mockdata.Catalog) service {
	if catalog == nil {
		catalog = mockdata.Default()
	}
	return service{provider: provider, devLogin: devLogin, sessions: sessions, catalog: catalog}
}

func (s service) entraEnabled() bool {
	return s.provider != nil && s.sessions != nil
}

func (s service) devEnabled() bool {
	return !s.entraEnabled() && s.devLogin && s.sessions != nil
}

// signInStart is where the browser goes next and the flow cookie to set.
type signInStart struct {
	Location  string
	FlowToken string
}

// beginSignIn starts the provider redirect with fresh state and a PKCE verifier.
func (s service) beginSignIn(next string, redirectURL string) (signInStart, error) {
	if !s.entraEnabled() {
		return signInStart{}, apperrors.EK(apperrors.KindUnavailable, "web.login.not_configured", "identity provider is not configured")
	}
	state, err := id.NewID()
	if err != nil {
		return signInStart{}, apperrors.Wrap(apperrors.KindUnknown, "", "generate oauth state", err)
	}
	verifier := oauth2.GenerateVerifier()
	token, err := s.sessions.IssueFlow(websession.Flow{
		State:    state,
		Verifier: verifier,
		Next:     routepath.SafeNext(next),
	})
	if err != nil {
		return signInStart{}, apperrors.Wrap(apperrors.KindUnknown, "", "issue oauth flow", err)
	}
	return signInStart{
		Location:  s.provider.AuthCodeURL(state, verifier, redirectURL),
		FlowToken: token,
	}, nil
}

// completeSignIn validates the callback against the flow cookie and
// exchanges the code.
func (s service) completeSignIn(ctx context.Context, flowToken string, state string, code string, redirectURL string) (websession.Principal, string, error) {
	if !s.entraEnabled() {
		return websession.Principal{}, "", apperrors.EK(apperrors.KindUnavailable, "web.login.not_configured", "identity provider is not configured")
	}
	flow, err := s.sessions.ParseFlow(flowToken)
	if err != nil {
		return websession.Principal{}, "", apperrors.Wrap(apperrors.KindUnauthorized, "", "read oauth flow", err)
	}
	if subtle.ConstantTimeCompare([]byte(flow.State), []byte(strings.TrimSpace(state))) != 1 {
		return websession.Principal{}, "", apperrors.E(apperrors.KindForbidden, "oauth state mismatch")
	}
	if strings.TrimSpace(code) == "" {
		return websession.Principal{}, "", apperrors.E(apperrors.KindInvalidInput, "authorization code is required")
	}
	identity, err := s.provider.Exchange(ctx, code, flow.Verifier, redirectURL)
	if err != nil {
		return websession.Principal{}, "", apperrors.Wrap(apperrors.KindUnauthorized, "", "exchange authorization code", err)
	}
	return s.principalFor(identity), routepath.SafeNext(flow.Next), nil
}

// devPrincipal signs in as the first admin of the catalog.
func (s service) devPrincipal() (websession.Principal, error) {
	if !s.devEnabled() {
		return websession.Principal{}, apperrors.EK(apperrors.KindUnavailable, "web.login.not_configured", "dev login is disabled")
	}
	users := s.catalog.Users()
	for _, u := range users {
		if u.Role == mockdata.RoleAdmin {
			return principalFromUser(u), nil
		}
	}
	if len(users) > 0 {
		return principalFromUser(users[0]), nil
	}
	return websession.Principal{}, apperrors.EK(apperrors.KindUnavailable, "web.login.not_configured", "catalog has no users")
}

// principalFor maps a provider identity onto a known team member by email,
// falling back to the provider profile.
func (s service) principalFor(identity Identity) websession.Principal {
	if u, ok := s.catalog.UserByEmail(identity.Email); ok {
		return principalFromUser(u)
	}
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = identity.Email
	}
	return websession.Principal{
		UserID:    "entra:" + identity.Subject,
		Name:      name,
		Email:     identity.Email,
		AvatarURL: avatarFallbackBase + url.QueryEscape(name),
	}
}

func principalFromUser(u mockdata.User) websession.Principal {
	avatar := u.AvatarURL
	if avatar == "" {
		avatar = avatarFallbackBase + url.QueryEscape(u.Name)
	}
	return websession.Principal{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: avatar,
	}
}

func (s service) issueSession(p websession.Principal) (string, error) {
	token, _, err := s.sessions.IssueSession(p)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindUnknown, "", "issue session", err)
	}
	return token, nil
}

// loginErrorKey maps a login error code to its catalog message.
func loginErrorKey(code string) string {
	switch strings.TrimSpace(code) {
	case routepath.AuthErrorSignInFailed:
		return "web.login.error.signin_failed"
	case routepath.AuthErrorNotConfigured:
		return "web.login.not_configured"
	case routepath.AuthErrorStateMismatch:
		return "web.login.error.state_mismatch"
	case routepath.AuthErrorProviderDenied:
		return "web.login.error.provider_denied"
	default:
		return ""
	}
}
