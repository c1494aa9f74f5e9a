package publicauth

import (
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-key"))
	if err != nil {
		t.Fatalf("sign id token: %v", err)
	}
	return token
}

func TestIdentityFromIDTokenPrefersOIDAndEmail(t *testing.T) {
	t.Parallel()

	raw := signedIDToken(t, jwt.MapClaims{
		"oid":                "object-1",
		"sub":                "pairwise-sub",
		"name":               "Diana Evans",
		"preferred_username": "Diana@TeamBoost.com",
	})
	got, err := identityFromIDToken(raw)
	if err != nil {
		t.Fatalf("identityFromIDToken() error = %v", err)
	}
	want := Identity{Subject: "object-1", Name: "Diana Evans", Email: "diana@teamboost.com"}
	if got != want {
		t.Fatalf("identity = %+v, want %+v", got, want)
	}
}

func TestIdentityFromIDTokenRequiresSubject(t *testing.T) {
	t.Parallel()

	if _, err := identityFromIDToken(signedIDToken(t, jwt.MapClaims{"name": "x"})); err == nil {
		t.Fatalf("expected missing subject error")
	}
	if _, err := identityFromIDToken("not-a-jwt"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewEntraProviderRequiresCredentials(t *testing.T) {
	t.Parallel()

	if _, err := NewEntraProvider(EntraConfig{ClientID: "id"}, nil); err == nil {
		t.Fatalf("expected error for partial config")
	}
}

func TestEntraAuthCodeURLUsesTenantAndPKCE(t *testing.T) {
	t.Parallel()

	provider, err := NewEntraProvider(EntraConfig{ClientID: "client", ClientSecret: "secret", TenantID: "tenant-1"}, nil)
	if err != nil {
		t.Fatalf("NewEntraProvider() error = %v", err)
	}
	raw := provider.AuthCodeURL("state-1", "verifier-with-plenty-of-entropy-000000000000", "http://localhost:3000/auth/callback/microsoft-entra-id")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if parsed.Host != "login.microsoftonline.com" || !strings.HasPrefix(parsed.Path, "/tenant-1/") {
		t.Fatalf("auth url = %q, want tenant endpoint", raw)
	}
	query := parsed.Query()
	for key, want := range map[string]string{
		"client_id":             "client",
		"state":                 "state-1",
		"code_challenge_method": "S256",
		"redirect_uri":          "http://localhost:3000/auth/callback/microsoft-entra-id",
	} {
		if got := query.Get(key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
	if query.Get("code_challenge") == "" {
		t.Fatalf("auth url missing code_challenge")
	}
}
