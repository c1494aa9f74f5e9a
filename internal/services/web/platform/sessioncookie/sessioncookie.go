// Package sessioncookie centralizes the web service's HttpOnly cookies.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
)

// Cookie describes one HttpOnly, SameSite=Lax cookie.
type Cookie struct {
	Name string
	Path string
}

// Session holds the signed session token.
var Session = Cookie{Name: "tb_session", Path: "/"}

// Flow holds the signed OAuth2 state between sign-in and callback. It is
// scoped to /auth/ so it never rides along on page requests.
var Flow = Cookie{Name: "tb_auth_flow", Path: "/auth/"}

// Read returns the trimmed cookie value when present.
func (c Cookie) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(c.Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the cookie. A non-positive maxAge makes it a browser-session cookie.
func (c Cookie) Write(w http.ResponseWriter, r *http.Request, value string, maxAge time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    strings.TrimSpace(value),
		Path:     c.path(),
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the cookie.
func (c Cookie) Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     c.path(),
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (c Cookie) path() string {
	if strings.TrimSpace(c.Path) == "" {
		return "/"
	}
	return c.Path
}

// Read returns the session token when present.
func Read(r *http.Request) (string, bool) {
	return Session.Read(r)
}
