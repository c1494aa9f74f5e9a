package publicauth

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
)

type fakeProvider struct {
	identity Identity
	err      error

	gotCode     string
	gotVerifier string
	gotRedirect string
}

func (p *fakeProvider) AuthCodeURL(state string, verifier string, redirectURL string) string {
	values := url.Values{}
	values.Set("state", state)
	values.Set("redirect_uri", redirectURL)
	values.Set("code_challenge_method", "S256")
	return "https://login.example.test/authorize?" + values.Encode()
}

func (p *fakeProvider) Exchange(_ context.Context, code string, verifier string, redirectURL string) (Identity, error) {
	p.gotCode = code
	p.gotVerifier = verifier
	p.gotRedirect = redirectURL
	if p.err != nil {
		return Identity{}, p.err
	}
	return p.identity, nil
}

var errExchangeFailed = errors.New("exchange failed")

func newTestCodec(t *testing.T) *websession.Codec {
	t.Helper()
	codec, err := websession.NewCodec(websession.Config{
		Secret: "test-secret-with-enough-bytes",
		Now:    func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	return codec
}
