// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"path"
	"strings"
)

const (
	Root                    = "/"
	Health                  = "/up"
	StaticPrefix            = "/static/"
	Pricing                 = "/pricing"
	PricingPrefix           = "/pricing/"
	Public                  = "/public"
	PublicPrefix            = "/public/"
	Login                   = "/login"
	LoginPrefix             = "/login/"
	AuthPrefix              = "/auth/"
	AuthSignIn              = "/auth/signin"
	AuthSignOut             = "/auth/signout"
	AuthCallbackEntra       = "/auth/callback/microsoft-entra-id"
	PreferencesPrefix       = "/preferences/"
	PreferencesTheme        = "/preferences/theme"
	PreferencesSidebar      = "/preferences/sidebar"
	PreferencesLanguage     = "/preferences/language"
	Dashboard               = "/dashboard"
	DashboardPrefix         = "/dashboard/"
	DashboardNotes          = "/dashboard/notes"
	DashboardTeam           = "/dashboard/team"
	DashboardSettings       = "/dashboard/settings"
	DashboardRestPattern    = DashboardPrefix + "{rest...}"
	NextQueryKey            = "next"
	ViewQueryKey            = "view"
	NotesViewTable          = "table"
	BillingQueryKey         = "billing"
	BillingMonthly          = "monthly"
	BillingYearly           = "yearly"
	SearchQueryKey          = "q"
	LanguageQueryKey        = "lang"
	AuthErrorQueryKey       = "error"
	AuthErrorSignInFailed   = "signin-failed"
	AuthErrorNotConfigured  = "not-configured"
	AuthErrorStateMismatch  = "state-mismatch"
	AuthErrorProviderDenied = "provider-denied"
)

// DashboardNotesTable returns the table variant of the notes wall.
func DashboardNotesTable() string {
	return DashboardNotes + "?" + ViewQueryKey + "=" + NotesViewTable
}

// PricingWithBilling returns the pricing route with a billing period selected.
func PricingWithBilling(billing string) string {
	billing = strings.ToLower(strings.TrimSpace(billing))
	if billing != BillingMonthly && billing != BillingYearly {
		return Pricing
	}
	return Pricing + "?" + BillingQueryKey + "=" + billing
}

// PublicSearch returns the public wall filtered by query.
func PublicSearch(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return Public
	}
	return Public + "?" + SearchQueryKey + "=" + url.QueryEscape(query)
}

// LoginWithNext returns the login route carrying a post-sign-in destination.
// Destinations outside the dashboard are dropped.
func LoginWithNext(next string) string {
	next = SafeNext(next)
	if next == Dashboard {
		return Login
	}
	return Login + "?" + NextQueryKey + "=" + url.QueryEscape(next)
}

// LoginWithError returns the login route with an auth error code.
func LoginWithError(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return Login
	}
	return Login + "?" + AuthErrorQueryKey + "=" + url.QueryEscape(code)
}

// SafeNext returns raw when it names a local dashboard path, otherwise
// Dashboard. Absolute URLs, scheme-relative paths and traversal outside
// the dashboard are rejected.
func SafeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return Dashboard
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return Dashboard
	}
	cleaned := path.Clean(parsed.Path)
	if cleaned != Dashboard && !strings.HasPrefix(cleaned, DashboardPrefix) {
		return Dashboard
	}
	if parsed.RawQuery != "" {
		return cleaned + "?" + parsed.RawQuery
	}
	return cleaned
}

// SafeLocalPath returns raw when it is a local absolute path, otherwise
// fallback. Used for "back to where I was" redirects after preference posts.
func SafeLocalPath(raw string, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return fallback
	}
	return raw
}

// IsDashboardPath reports whether p is the dashboard root or below it.
func IsDashboardPath(p string) bool {
	p = strings.TrimSpace(p)
	return p == Dashboard || strings.HasPrefix(p, DashboardPrefix)
}

// WithLanguage returns p with the lang query parameter replaced.
func WithLanguage(p string, rawQuery string, lang string) string {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(LanguageQueryKey, strings.TrimSpace(lang))
	if strings.TrimSpace(p) == "" {
		p = Root
	}
	return p + "?" + values.Encode()
}
