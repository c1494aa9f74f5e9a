// Package flash carries a one-time notice across a redirect in a short-lived
// cookie.
//
// A notice holds a catalog key, never display text, so it renders in the
// language of the page that consumes it.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie holding the pending notice.
const CookieName = "tb_flash"

// Unrendered notices expire quickly, e.g. when the redirect target failed.
const maxAgeSeconds = 60

// Kind selects how a notice is presented.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice references one catalog message.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// NoticeSuccess returns a success notice for key.
func NoticeSuccess(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// NoticeError returns an error notice for key.
func NoticeError(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

func (n Notice) normalized() (Notice, bool) {
	n.Key = strings.TrimSpace(n.Key)
	n.Kind = Kind(strings.ToLower(strings.TrimSpace(string(n.Kind))))
	if n.Key == "" {
		return Notice{}, false
	}
	switch n.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return n, true
	}
	return Notice{}, false
}

func (n Notice) encode() (string, bool) {
	clean, ok := n.normalized()
	if !ok {
		return "", false
	}
	raw, err := json.Marshal(clean)
	if err != nil {
		return "", false
	}
	return base64.RawURLEncoding.EncodeToString(raw), true
}

func decode(value string) (Notice, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil || len(raw) == 0 {
		return Notice{}, false
	}
	var n Notice
	if err := json.Unmarshal(raw, &n); err != nil {
		return Notice{}, false
	}
	return n.normalized()
}

// Write queues notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	if value, ok := notice.encode(); ok {
		http.SetCookie(w, cookie(r, policy, value, maxAgeSeconds))
	}
}

// ReadAndClear returns the pending notice, if any, and expires the cookie
// when w is set.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	Clear(w, r, policy)
	return decode(c.Value)
}

// Clear expires the notice cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, cookie(r, policy, "", -1))
}

func cookie(r *http.Request, policy requestmeta.SchemePolicy, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
