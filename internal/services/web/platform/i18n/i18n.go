// Package i18n negotiates the request language and builds message printers
// backed by the embedded catalogs.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/teamboost/gratitudewall/internal/platform/i18n/catalog"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
)

// LanguageCookieName stores an explicit language choice.
const LanguageCookieName = "tb_lang"

// LanguageQueryKey overrides the language for a single request.
const LanguageQueryKey = "lang"

const languageCookieMaxAge = 365 * 24 * 60 * 60

var (
	supported = catalog.Default().Tags()
	matcher   = language.NewMatcher(supported)
)

// Supported returns the catalog languages, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the fallback language.
func Default() language.Tag {
	return supported[0]
}

// Match maps a raw tag to a supported language. Unknown or unsupported input
// reports false.
func Match(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return Default(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supported[index], true
}

// ResolveLanguage negotiates the request language: the lang query parameter
// first, then the language cookie, then Accept-Language.
func ResolveLanguage(r *http.Request) string {
	return resolveTag(r).String()
}

func resolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if r.URL != nil {
		if tag, ok := Match(r.URL.Query().Get(LanguageQueryKey)); ok {
			return tag
		}
	}
	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if tag, ok := Match(cookie.Value); ok {
			return tag
		}
	}
	accepted, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(accepted) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(accepted...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// ResolveTag resolves the request language through resolve. A nil resolve,
// or one with no supported answer, falls back to the default negotiation.
func ResolveTag(r *http.Request, resolve func(*http.Request) string) language.Tag {
	if resolve != nil {
		if tag, ok := Match(resolve(r)); ok {
			return tag
		}
	}
	return resolveTag(r)
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveLocalizer returns a printer and the language string for the request.
// An explicit lang query parameter is remembered in a cookie when w is set.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolve func(*http.Request) string) (*message.Printer, string) {
	tag := ResolveTag(r, resolve)
	if w != nil && r != nil && r.URL != nil {
		if explicit, ok := Match(r.URL.Query().Get(LanguageQueryKey)); ok && explicit == tag {
			WriteLanguage(w, r, tag, requestmeta.SchemePolicy{})
		}
	}
	return Printer(tag), tag.String()
}

// WriteLanguage persists an explicit language choice.
func WriteLanguage(w http.ResponseWriter, r *http.Request, tag language.Tag, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LanguageCookieName,
		Value:    tag.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   languageCookieMaxAge,
	})
}

// LabelKey returns the catalog key for a language's display label.
func LabelKey(tag language.Tag) string {
	return "web.language." + tag.String()
}
