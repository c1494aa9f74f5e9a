package publicauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/teamboost/gratitudewall/internal/platform/timeouts"
)

// Identity is the subset of ID-token claims the web service keeps.
type Identity struct {
	Subject string
	Name    string
	Email   string
}

// IdentityProvider runs the OAuth2 authorization-code flow with PKCE.
type IdentityProvider interface {
	// AuthCodeURL returns the provider URL that starts sign-in.
	AuthCodeURL(state string, verifier string, redirectURL string) string
	// Exchange trades an authorization code for the signed-in identity.
	Exchange(ctx context.Context, code string, verifier string, redirectURL string) (Identity, error)
}

// EntraConfig holds Microsoft Entra ID application credentials.
type EntraConfig struct {
	ClientID     string
	ClientSecret string
	TenantID     string
}

// Enabled reports whether every credential is present.
func (c EntraConfig) Enabled() bool {
	return strings.TrimSpace(c.ClientID) != "" &&
		strings.TrimSpace(c.ClientSecret) != "" &&
		strings.TrimSpace(c.TenantID) != ""
}

// entraScopes request an ID token carrying profile and email claims.
var entraScopes = []string{"openid", "profile", "email", "offline_access", "User.Read"}

type entraProvider struct {
	config oauth2.Config
	client *http.Client
}

// NewEntraProvider returns an IdentityProvider for the configured tenant.
// A nil client uses http.DefaultClient.
func NewEntraProvider(cfg EntraConfig, client *http.Client) (IdentityProvider, error) {
	if !cfg.Enabled() {
		return nil, errors.New("entra id client id, secret and tenant are required")
	}
	return entraProvider{
		config: oauth2.Config{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			Endpoint:     microsoft.AzureADEndpoint(strings.TrimSpace(cfg.TenantID)),
			Scopes:       entraScopes,
		},
		client: client,
	}, nil
}

func (p entraProvider) withRedirect(redirectURL string) oauth2.Config {
	cfg := p.config
	cfg.RedirectURL = redirectURL
	return cfg
}

func (p entraProvider) AuthCodeURL(state string, verifier string, redirectURL string) string {
	cfg := p.withRedirect(redirectURL)
	return cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
}

func (p entraProvider) Exchange(ctx context.Context, code string, verifier string, redirectURL string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.OAuthExchange)
	defer cancel()
	if p.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	}
	cfg := p.withRedirect(redirectURL)
	token, err := cfg.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return Identity{}, fmt.Errorf("exchange authorization code: %w", err)
	}
	rawIDToken, _ := token.Extra("id_token").(string)
	if strings.TrimSpace(rawIDToken) == "" {
		return Identity{}, errors.New("token response has no id_token")
	}
	return identityFromIDToken(rawIDToken)
}

// identityFromIDToken reads claims from an ID token received directly from
// the token endpoint over TLS, where OpenID Connect lets the client skip
// signature validation.
func identityFromIDToken(raw string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Identity{}, fmt.Errorf("parse id token: %w", err)
	}
	identity := Identity{
		Subject: firstClaim(claims, "oid", "sub"),
		Name:    firstClaim(claims, "name"),
		Email:   strings.ToLower(firstClaim(claims, "email", "preferred_username")),
	}
	if identity.Subject == "" {
		return Identity{}, errors.New("id token has no subject")
	}
	return identity, nil
}

func firstClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if value, ok := claims[name].(string); ok {
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}
	return ""
}
