// Package uiprefs reads and writes per-browser UI preferences.
//
// Preferences are resolved per request and handed to layouts explicitly; no
// page reaches for them through a global.
package uiprefs

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
)

// Theme is the colour scheme requested by the browser.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

const (
	// ThemeCookieName stores the selected Theme.
	ThemeCookieName = "tb_theme"
	// SidebarCookieName stores whether the app sidebar is expanded.
	SidebarCookieName = "tb_sidebar"
)

const cookieMaxAge = 365 * 24 * time.Hour

// Preferences is the UI state a layout needs to render.
type Preferences struct {
	Theme       Theme
	SidebarOpen bool
}

// Default returns preferences for a browser that never chose anything.
func Default() Preferences {
	return Preferences{Theme: ThemeSystem, SidebarOpen: true}
}

// ParseTheme normalizes raw input; unknown values report false.
func ParseTheme(raw string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeSystem:
		return ThemeSystem, true
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Themes lists the selectable themes in display order.
func Themes() []Theme {
	return []Theme{ThemeSystem, ThemeLight, ThemeDark}
}

// Read resolves preferences from request cookies, falling back to Default
// for anything missing or malformed.
func Read(r *http.Request) Preferences {
	prefs := Default()
	if r == nil {
		return prefs
	}
	if cookie, err := r.Cookie(ThemeCookieName); err == nil {
		if theme, ok := ParseTheme(cookie.Value); ok {
			prefs.Theme = theme
		}
	}
	if cookie, err := r.Cookie(SidebarCookieName); err == nil {
		if open, err := strconv.ParseBool(strings.TrimSpace(cookie.Value)); err == nil {
			prefs.SidebarOpen = open
		}
	}
	return prefs
}

// WriteTheme persists theme for the browser.
func WriteTheme(w http.ResponseWriter, r *http.Request, theme Theme, policy requestmeta.SchemePolicy) {
	write(w, r, ThemeCookieName, string(theme), policy)
}

// WriteSidebar persists the sidebar state for the browser.
func WriteSidebar(w http.ResponseWriter, r *http.Request, open bool, policy requestmeta.SchemePolicy) {
	write(w, r, SidebarCookieName, strconv.FormatBool(open), policy)
}

func write(w http.ResponseWriter, r *http.Request, name string, value string, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge / time.Second),
	})
}
