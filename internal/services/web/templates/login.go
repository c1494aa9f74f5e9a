package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/platform/branding"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// LoginView describes which sign-in options the server offers.
type LoginView struct {
	Next         string
	ErrorKey     string
	EntraEnabled bool
	DevEnabled   bool
}

// AuthLayout is the bare centered layout used by sign-in pages.
func AuthLayout(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		body, ctx := children(ctx)
		document(ctx, m, page, "auth", func() {
			m.raw(`<main id="main" class="auth-main">`)
			m.component(ctx, body)
			m.raw("</main>")
		})
	})
}

// LoginPage renders the sign-in card.
func LoginPage(view LoginView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="login-card"><header><span class="brand-mark" aria-hidden="true">&#9889;</span>`)
		m.element("h1", "", T(loc, "web.login.title", branding.AppName))
		m.element("p", "muted", T(loc, "web.login.description"))
		m.raw("</header>")
		if view.ErrorKey != "" {
			m.element("p", "alert alert-error", T(loc, view.ErrorKey))
		}
		if !view.EntraEnabled && !view.DevEnabled {
			m.element("p", "alert alert-warning", T(loc, "web.login.not_configured"))
			m.raw("</section>")
			return
		}
		m.raw(`<form method="post"`)
		m.attr("action", routepath.AuthSignIn)
		m.raw(`><input type="hidden"`)
		m.attr("name", routepath.NextQueryKey)
		m.attr("value", view.Next)
		m.raw(`><button type="submit" class="button button-primary button-block">`)
		if view.EntraEnabled {
			m.text(T(loc, "web.login.microsoft"))
		} else {
			m.text(T(loc, "web.login.dev"))
		}
		m.raw("</button></form>")
		m.link("back-link", routepath.Root, T(loc, "web.feed.back_home"))
		m.raw("</section>")
	})
}
