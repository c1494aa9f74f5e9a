// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/platform/logging"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
)

// Viewer contains user-facing chrome data for authenticated app pages.
type Viewer struct {
	UserID      string
	DisplayName string
	Email       string
	AvatarURL   string
}

// SignedIn reports whether the viewer belongs to a session.
func (v Viewer) SignedIn() bool {
	return strings.TrimSpace(v.UserID) != ""
}

// Initial is the avatar fallback letter.
func (v Viewer) Initial() string {
	name := strings.TrimSpace(v.DisplayName)
	if name == "" {
		name = strings.TrimSpace(v.Email)
	}
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveSignedIn reports whether the request is associated with a signed-in actor.
type ResolveSignedIn func(*http.Request) bool

// ResolveUserID resolves the authenticated user id for a request.
type ResolveUserID func(*http.Request) string

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ResolvePreferences returns the browser's UI preferences.
type ResolvePreferences func(*http.Request) uiprefs.Preferences

// Dependencies carries request resolvers and shared runtime services handed
// to every module at mount time.
type Dependencies struct {
	ResolveViewer      ResolveViewer
	ResolveSignedIn    ResolveSignedIn
	ResolveUserID      ResolveUserID
	ResolveLanguage    ResolveLanguage
	ResolvePreferences ResolvePreferences

	Logger       *zap.Logger
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}

// ResolveRequestViewer resolves viewer state, or the zero Viewer when no
// resolver is wired.
func (d Dependencies) ResolveRequestViewer(r *http.Request) Viewer {
	if d.ResolveViewer == nil {
		return Viewer{}
	}
	return d.ResolveViewer(r)
}

// ResolveRequestLanguage returns the request language, or "" when unresolved.
func (d Dependencies) ResolveRequestLanguage(r *http.Request) string {
	if d.ResolveLanguage == nil {
		return ""
	}
	return d.ResolveLanguage(r)
}

// ResolveRequestPreferences returns UI preferences, read from cookies when no
// resolver is wired.
func (d Dependencies) ResolveRequestPreferences(r *http.Request) uiprefs.Preferences {
	if d.ResolvePreferences == nil {
		return uiprefs.Read(r)
	}
	return d.ResolvePreferences(r)
}

// IsSignedIn reports whether the request carries a valid session.
func (d Dependencies) IsSignedIn(r *http.Request) bool {
	if d.ResolveSignedIn != nil {
		return d.ResolveSignedIn(r)
	}
	return d.ResolveRequestViewer(r).SignedIn()
}

// RequestSchemePolicy returns the policy used for cookie and origin checks.
func (d Dependencies) RequestSchemePolicy() requestmeta.SchemePolicy {
	return d.SchemePolicy
}

// Log returns the module logger, never nil.
func (d Dependencies) Log() *zap.Logger {
	return logging.OrNop(d.Logger)
}

// Clock returns the configured time source.
func (d Dependencies) Clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
