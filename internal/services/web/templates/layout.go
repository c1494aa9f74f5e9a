package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/platform/branding"
	"github.com/teamboost/gratitudewall/internal/platform/icons"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Description  string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Prefs        uiprefs.Preferences
	SignedIn     bool
	Year         int
}

// AppMainHeader is the heading block above app page content.
type AppMainHeader struct {
	Title    string
	Subtitle string
}

// AppToast is a one-time notice shown above app page content.
type AppToast struct {
	Kind    string
	Message string
}

// AppChrome carries everything the authenticated shell draws around a page.
type AppChrome struct {
	Page   PageContext
	Viewer module.Viewer
	Header *AppMainHeader
	Toast  *AppToast
}

// DocumentTitle appends the product name to a page title.
func DocumentTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

func themeClass(prefs uiprefs.Preferences) string {
	theme := prefs.Theme
	if theme == "" {
		theme = uiprefs.ThemeSystem
	}
	return "theme-" + string(theme)
}

func lang(page PageContext) string {
	if strings.TrimSpace(page.Lang) == "" {
		return webi18n.Default().String()
	}
	return page.Lang
}

func document(ctx context.Context, m *markup, page PageContext, bodyClass string, body func()) {
	description := page.Description
	if description == "" {
		description = T(page.Loc, "web.meta.description")
	}
	m.raw("<!doctype html><html")
	m.attr("lang", lang(page))
	m.attr("class", themeClass(page.Prefs))
	m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
	m.raw("<title>")
	m.text(DocumentTitle(page.Title))
	m.raw(`</title><meta name="description"`)
	m.attr("content", description)
	m.raw(`><link rel="stylesheet"`)
	m.attr("href", routepath.StaticPrefix+"site.css")
	m.raw(`><script defer`)
	m.attr("src", htmxScriptURL)
	m.raw(`></script><script defer`)
	m.attr("src", routepath.StaticPrefix+"site.js")
	m.raw("></script></head><body")
	m.attr("class", bodyClass)
	m.raw(">", icons.LucideSprite())
	body()
	m.raw("</body></html>")
}

// MarketingLayout wraps public pages with the site header and footer.
func MarketingLayout(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		body, ctx := children(ctx)
		document(ctx, m, page, "marketing", func() {
			siteHeader(m, page)
			m.raw(`<main id="main" class="marketing-main">`)
			m.component(ctx, body)
			m.raw("</main>")
			siteFooter(m, page)
		})
	})
}

func brand(m *markup) {
	m.raw(`<a class="brand"`)
	m.attr("href", routepath.Root)
	m.raw(`><span class="brand-mark" aria-hidden="true">&#9889;</span><span class="brand-name">`)
	m.text(branding.AppName)
	m.raw("</span></a>")
}

func siteHeader(m *markup, page PageContext) {
	m.raw(`<header class="site-header"><nav class="floating-nav">`)
	brand(m)
	m.raw(`<div class="nav-links">`)
	navLink(m, routepath.Root+"#story", T(page.Loc, "web.nav.features"), false)
	navLink(m, routepath.Public, T(page.Loc, "web.nav.public_wall"), page.CurrentPath == routepath.Public)
	navLink(m, routepath.Pricing, T(page.Loc, "web.nav.pricing"), page.CurrentPath == routepath.Pricing)
	m.raw(`</div><div class="nav-actions">`)
	if page.SignedIn {
		m.raw(`<a class="button button-primary"`)
		m.attr("href", routepath.Dashboard)
		m.raw(">")
		m.text(T(page.Loc, "web.nav.dashboard"))
		m.raw("</a>")
	} else {
		m.raw(`<a class="button button-ghost"`)
		m.attr("href", routepath.Login)
		m.raw(">")
		m.text(T(page.Loc, "web.nav.login"))
		m.raw(`</a><a class="button button-primary"`)
		m.attr("href", routepath.Dashboard)
		m.raw(">")
		m.text(T(page.Loc, "web.nav.get_started"))
		m.raw("</a>")
	}
	m.raw("</div></nav></header>")
}

func navLink(m *markup, href string, label string, active bool) {
	m.raw("<a")
	m.attr("href", href)
	if active {
		m.raw(` class="active" aria-current="page"`)
	}
	m.raw(">")
	m.text(label)
	m.raw("</a>")
}

var footerColumns = []struct {
	heading string
	links   []string
}{
	{heading: "web.footer.product", links: []string{"web.nav.features", "web.nav.public_wall", "web.footer.changelog", "web.footer.docs"}},
	{heading: "web.footer.company", links: []string{"web.footer.about", "web.footer.careers", "web.footer.blog", "web.footer.contact"}},
	{heading: "web.footer.legal", links: []string{"web.footer.privacy", "web.footer.terms", "web.footer.cookies"}},
}

func siteFooter(m *markup, page PageContext) {
	m.raw(`<footer class="site-footer"><div class="footer-watermark" aria-hidden="true">`)
	m.text(branding.AppName)
	m.raw(`</div><div class="footer-grid"><div class="footer-brand">`)
	brand(m)
	m.element("p", "", T(page.Loc, "web.footer.blurb"))
	m.raw("</div>")
	for _, column := range footerColumns {
		m.raw(`<div class="footer-column">`)
		m.element("h3", "", T(page.Loc, column.heading))
		for _, key := range column.links {
			href := "#"
			if key == "web.nav.public_wall" {
				href = routepath.Public
			}
			m.raw("<a")
			m.attr("href", href)
			m.raw(">")
			m.text(T(page.Loc, key))
			m.raw("</a>")
		}
		m.raw("</div>")
	}
	m.raw(`</div><div class="footer-bar"><span class="status-dot" aria-hidden="true"></span>`)
	m.element("span", "status", T(page.Loc, "web.footer.status"))
	m.element("span", "copyright", T(page.Loc, "web.footer.copyright", itoa(page.Year), branding.CopyrightHolder))
	languageSwitcher(m, page)
	m.raw("</div></footer>")
}

func languageSwitcher(m *markup, page PageContext) {
	m.raw(`<nav class="language-switcher"`)
	m.attr("aria-label", T(page.Loc, "web.language.label"))
	m.raw(">")
	current := lang(page)
	for _, tag := range webi18n.Supported() {
		m.raw("<a")
		m.attr("href", routepath.WithLanguage(page.CurrentPath, page.CurrentQuery, tag.String()))
		m.attr("hreflang", tag.String())
		if tag.String() == current {
			m.raw(` class="active" aria-current="true"`)
		}
		m.raw(">")
		m.text(T(page.Loc, webi18n.LabelKey(tag)))
		m.raw("</a>")
	}
	m.raw("</nav>")
}

type sidebarItem struct {
	href  string
	label string
	icon  icons.ID
}

var sidebarItems = []sidebarItem{
	{href: routepath.Dashboard, label: "web.sidebar.overview", icon: icons.Overview},
	{href: routepath.DashboardNotes, label: "web.sidebar.notes", icon: icons.Notes},
	{href: routepath.DashboardTeam, label: "web.sidebar.team", icon: icons.Team},
	{href: routepath.DashboardSettings, label: "web.sidebar.settings", icon: icons.Settings},
}

// SidebarActive reports whether href is the current sidebar section.
func SidebarActive(href string, currentPath string) bool {
	currentPath = strings.TrimSuffix(currentPath, "/")
	if currentPath == "" {
		currentPath = routepath.Root
	}
	if href == routepath.Dashboard {
		return currentPath == routepath.Dashboard
	}
	return currentPath == href || strings.HasPrefix(currentPath, href+"/")
}

// AppLayout wraps dashboard pages with the sidebar shell.
func AppLayout(chrome AppChrome) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		body, ctx := children(ctx)
		page := chrome.Page
		document(ctx, m, page, "app", func() {
			state := "closed"
			if page.Prefs.SidebarOpen {
				state = "open"
			}
			m.raw(`<div class="app-shell"`)
			m.attr("data-sidebar", state)
			m.raw(">")
			sidebar(m, chrome)
			m.raw(`<div class="app-body"><header class="app-header">`)
			sidebarToggle(m, page)
			m.raw(`<nav class="breadcrumb"`)
			m.attr("aria-label", T(page.Loc, "web.app.breadcrumb"))
			m.raw("><a")
			m.attr("href", routepath.Dashboard)
			m.raw(">")
			m.text(branding.AppName)
			m.raw(`</a><span aria-hidden="true">/</span>`)
			m.element("span", "", T(page.Loc, "web.app.dashboard"))
			m.raw("</nav>")
			themeToggle(m, page)
			m.raw("</header>")
			if chrome.Toast != nil {
				m.raw(`<div role="status"`)
				m.attr("class", "toast toast-"+chrome.Toast.Kind)
				m.raw(">")
				m.text(chrome.Toast.Message)
				m.raw("</div>")
			}
			m.raw(`<main id="main" class="app-main">`)
			m.component(templ.WithChildren(ctx, body), AppMainContent(chrome.Header))
			m.raw("</main></div></div>")
		})
	})
}

func sidebar(m *markup, chrome AppChrome) {
	page := chrome.Page
	m.raw(`<aside class="sidebar"><div class="sidebar-header">`)
	brand(m)
	m.element("span", "plan", T(page.Loc, "web.sidebar.plan"))
	m.raw(`</div><nav class="sidebar-nav">`)
	for _, item := range sidebarItems {
		m.raw("<a")
		m.attr("href", item.href)
		m.attr("hx-get", item.href)
		m.raw(` hx-target="#main" hx-push-url="true"`)
		if SidebarActive(item.href, page.CurrentPath) {
			m.raw(` class="active" aria-current="page"`)
		}
		m.raw(">", icons.Use(item.icon), "<span>")
		m.text(T(page.Loc, item.label))
		m.raw("</span></a>")
	}
	m.raw(`</nav><div class="sidebar-footer">`)
	m.component(context.Background(), Avatar(chrome.Viewer.DisplayName, chrome.Viewer.AvatarURL, chrome.Viewer.Initial()))
	m.raw(`<div class="viewer">`)
	m.element("span", "viewer-name", chrome.Viewer.DisplayName)
	m.element("span", "viewer-email", chrome.Viewer.Email)
	m.raw(`</div><form method="post"`)
	m.attr("action", routepath.AuthSignOut)
	m.raw(`><button type="submit" class="button button-ghost">`, icons.Use(icons.SignOut))
	m.text(T(page.Loc, "web.sidebar.sign_out"))
	m.raw("</button></form></div></aside>")
}

func sidebarToggle(m *markup, page PageContext) {
	m.raw(`<form method="post" class="sidebar-toggle"`)
	m.attr("action", routepath.PreferencesSidebar)
	m.raw(`><input type="hidden" name="open"`)
	m.attr("value", strconv.FormatBool(!page.Prefs.SidebarOpen))
	m.raw(`><input type="hidden" name="next"`)
	m.attr("value", currentURL(page))
	m.raw(`><button type="submit"`)
	m.attr("aria-label", T(page.Loc, "web.app.toggle_sidebar"))
	m.raw(">", icons.Use(icons.ToggleSidebar), "</button></form>")
}

func themeToggle(m *markup, page PageContext) {
	m.raw(`<form method="post" class="theme-toggle"`)
	m.attr("action", routepath.PreferencesTheme)
	m.raw(`><input type="hidden" name="next"`)
	m.attr("value", currentURL(page))
	m.raw(">")
	for _, theme := range uiprefs.Themes() {
		m.raw(`<button type="submit" name="theme"`)
		m.attr("value", string(theme))
		if page.Prefs.Theme == theme {
			m.raw(` aria-pressed="true"`)
		}
		m.raw(">")
		m.text(T(page.Loc, "web.theme."+string(theme)))
		m.raw("</button>")
	}
	m.raw("</form>")
}

func currentURL(page PageContext) string {
	if page.CurrentQuery == "" {
		return page.CurrentPath
	}
	return page.CurrentPath + "?" + page.CurrentQuery
}

// AppMainContent renders the swappable part of an app page. HTMX requests
// receive only this fragment.
func AppMainContent(header *AppMainHeader) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		body, ctx := children(ctx)
		m.raw(`<div class="app-content">`)
		if header != nil && strings.TrimSpace(header.Title) != "" {
			m.raw(`<header class="page-header">`)
			m.element("h2", "", header.Title)
			if header.Subtitle != "" {
				m.element("p", "muted", header.Subtitle)
			}
			m.raw("</header>")
		}
		m.component(ctx, body)
		m.raw("</div>")
	})
}

// Avatar renders a user image with an initial fallback.
func Avatar(name string, avatarURL string, initial string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if strings.TrimSpace(avatarURL) == "" {
			m.element("span", "avatar avatar-fallback", initial)
			return
		}
		m.raw(`<img class="avatar" loading="lazy"`)
		m.urlAttr("src", avatarURL)
		m.attr("alt", name)
		m.raw(">")
	})
}
