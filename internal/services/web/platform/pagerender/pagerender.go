// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	flashnotice "github.com/teamboost/gratitudewall/internal/services/web/platform/flash"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

// RequestResolver resolves per-request page state.
// This decouples platform rendering from the module-layer Dependencies type.
type RequestResolver interface {
	ResolveRequestViewer(r *http.Request) module.Viewer
	ResolveRequestLanguage(r *http.Request) string
	ResolveRequestPreferences(r *http.Request) uiprefs.Preferences
	RequestSchemePolicy() requestmeta.SchemePolicy
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Header     *webtemplates.AppMainHeader
	Fragment   templ.Component
}

// PublicPage describes an unauthenticated page.
type PublicPage struct {
	Title       string
	Description string
	StatusCode  int
	// Bare selects the centered auth layout instead of the marketing chrome.
	Bare bool
	Body templ.Component
}

// PageContext builds the shared layout context for r.
func PageContext(w http.ResponseWriter, r *http.Request, resolver RequestResolver, title string) webtemplates.PageContext {
	var resolveLanguage func(*http.Request) string
	prefs := uiprefs.Read(r)
	viewer := module.Viewer{}
	if resolver != nil {
		resolveLanguage = resolver.ResolveRequestLanguage
		prefs = resolver.ResolveRequestPreferences(r)
		viewer = resolver.ResolveRequestViewer(r)
	}
	loc, lang := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	page := webtemplates.PageContext{
		Title:    title,
		Lang:     lang,
		Loc:      loc,
		Prefs:    prefs,
		SignedIn: viewer.SignedIn(),
		Year:     time.Now().Year(),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// WriteModulePage writes a module page using shared app-shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		main := webtemplates.AppMainContent(page.Header)
		if err := main.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
		return httpx.WriteHTML(w, statusCode, buf.Bytes())
	}

	pageContext := PageContext(w, r, resolver, page.Title)
	chrome := webtemplates.AppChrome{
		Page:   pageContext,
		Header: page.Header,
		Toast:  resolveFlashToast(w, r, resolver, pageContext.Loc),
	}
	if resolver != nil {
		chrome.Viewer = resolver.ResolveRequestViewer(r)
	}
	if err := webtemplates.AppLayout(chrome).Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, resolver RequestResolver, loc webtemplates.Localizer) *webtemplates.AppToast {
	policy := requestmeta.SchemePolicy{}
	if resolver != nil {
		policy = resolver.RequestSchemePolicy()
	}
	notice, ok := flashnotice.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
	if message == "" {
		message = strings.TrimSpace(notice.Key)
	}
	if message == "" {
		return nil
	}
	return &webtemplates.AppToast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}

// WritePublicPage writes a public (unauthenticated) page.
func WritePublicPage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page PublicPage) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	pageContext := PageContext(w, r, resolver, page.Title)
	pageContext.Description = page.Description
	layout := webtemplates.MarketingLayout(pageContext)
	if page.Bare {
		layout = webtemplates.AuthLayout(pageContext)
	}
	var rendered bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), body), &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteHTML(w, statusCode, rendered.Bytes())
}
