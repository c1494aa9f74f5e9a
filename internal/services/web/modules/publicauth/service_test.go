package publicauth

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
)

func TestPrincipalForMapsKnownEmailToTeamMember(t *testing.T) {
	t.Parallel()

	s := newService(nil, false, nil, mockdata.Default())
	got := s.principalFor(Identity{Subject: "oid-1", Name: "Bob S", Email: "BOB@teamboost.com"})
	want := websession.Principal{
		UserID:    "u2",
		Name:      "Bob Smith",
		Email:     "bob@teamboost.com",
		AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=Bob",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("principalFor() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrincipalForUnknownIdentityUsesProviderProfile(t *testing.T) {
	t.Parallel()

	s := newService(nil, false, nil, mockdata.Default())
	got := s.principalFor(Identity{Subject: "oid-9", Name: "Zoe Park", Email: "zoe@example.com"})
	if got.UserID != "entra:oid-9" {
		t.Fatalf("UserID = %q, want %q", got.UserID, "entra:oid-9")
	}
	if got.AvatarURL != "https://api.dicebear.com/7.x/avataaars/svg?seed=Zoe+Park" {
		t.Fatalf("AvatarURL = %q", got.AvatarURL)
	}
}

func TestDevPrincipalIsFirstAdmin(t *testing.T) {
	t.Parallel()

	s := newService(nil, true, newTestCodec(t), mockdata.Default())
	got, err := s.devPrincipal()
	if err != nil {
		t.Fatalf("devPrincipal() error = %v", err)
	}
	if got.UserID != "u1" || got.Name != "Alice Chen" {
		t.Fatalf("devPrincipal() = %+v, want Alice Chen (u1)", got)
	}
}

func TestDevLoginDisabledWhenProviderConfigured(t *testing.T) {
	t.Parallel()

	s := newService(&fakeProvider{}, true, newTestCodec(t), nil)
	if s.devEnabled() {
		t.Fatalf("devEnabled() = true, want false when a provider is configured")
	}
	if _, err := s.devPrincipal(); apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("devPrincipal() error kind = %v, want unavailable", apperrors.KindOf(err))
	}
}

func TestSignInRoundTrip(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{identity: Identity{Subject: "oid-3", Name: "Charlie", Email: "charlie@teamboost.com"}}
	s := newService(provider, false, newTestCodec(t), nil)
	start, err := s.beginSignIn("/dashboard/notes", "http://localhost:3000/auth/callback/microsoft-entra-id")
	if err != nil {
		t.Fatalf("beginSignIn() error = %v", err)
	}
	location, err := url.Parse(start.Location)
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	state := location.Query().Get("state")
	if state == "" {
		t.Fatalf("location %q has no state", start.Location)
	}

	principal, next, err := s.completeSignIn(context.Background(), start.FlowToken, state, "code-1", "http://localhost:3000/auth/callback/microsoft-entra-id")
	if err != nil {
		t.Fatalf("completeSignIn() error = %v", err)
	}
	if principal.UserID != "u3" {
		t.Fatalf("UserID = %q, want u3", principal.UserID)
	}
	if next != "/dashboard/notes" {
		t.Fatalf("next = %q, want /dashboard/notes", next)
	}
	if provider.gotCode != "code-1" || provider.gotVerifier == "" {
		t.Fatalf("exchange got code=%q verifier=%q", provider.gotCode, provider.gotVerifier)
	}
}

func TestCompleteSignInRejectsStateMismatch(t *testing.T) {
	t.Parallel()

	s := newService(&fakeProvider{}, false, newTestCodec(t), nil)
	start, err := s.beginSignIn("", "http://localhost/cb")
	if err != nil {
		t.Fatalf("beginSignIn() error = %v", err)
	}
	_, _, err = s.completeSignIn(context.Background(), start.FlowToken, "forged", "code", "http://localhost/cb")
	if got := apperrors.KindOf(err); got != apperrors.KindForbidden {
		t.Fatalf("error kind = %v, want forbidden", got)
	}
}

func TestCompleteSignInRejectsMissingFlow(t *testing.T) {
	t.Parallel()

	s := newService(&fakeProvider{}, false, newTestCodec(t), nil)
	_, _, err := s.completeSignIn(context.Background(), "", "state", "code", "http://localhost/cb")
	if got := apperrors.KindOf(err); got != apperrors.KindUnauthorized {
		t.Fatalf("error kind = %v, want unauthorized", got)
	}
}

func TestCompleteSignInWrapsExchangeFailure(t *testing.T) {
	t.Parallel()

	s := newService(&fakeProvider{err: errExchangeFailed}, false, newTestCodec(t), nil)
	start, err := s.beginSignIn("", "http://localhost/cb")
	if err != nil {
		t.Fatalf("beginSignIn() error = %v", err)
	}
	state := mustState(t, start.Location)
	_, _, err = s.completeSignIn(context.Background(), start.FlowToken, state, "code", "http://localhost/cb")
	if err == nil || !strings.Contains(err.Error(), "exchange failed") {
		t.Fatalf("completeSignIn() error = %v, want wrapped exchange failure", err)
	}
}

func TestBeginSignInUnavailableWithoutProvider(t *testing.T) {
	t.Parallel()

	s := newService(nil, false, newTestCodec(t), nil)
	if _, err := s.beginSignIn("", "http://localhost/cb"); apperrors.HTTPStatus(err) != 503 {
		t.Fatalf("beginSignIn() status = %d, want 503", apperrors.HTTPStatus(err))
	}
}

func TestLoginErrorKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"signin-failed":   "web.login.error.signin_failed",
		"state-mismatch":  "web.login.error.state_mismatch",
		"provider-denied": "web.login.error.provider_denied",
		"not-configured":  "web.login.not_configured",
		"other":           "",
	}
	for code, want := range tests {
		if got := loginErrorKey(code); got != want {
			t.Fatalf("loginErrorKey(%q) = %q, want %q", code, got, want)
		}
	}
}

func mustState(t *testing.T, location string) string {
	t.Helper()
	parsed, err := url.Parse(location)
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	return parsed.Query().Get("state")
}
