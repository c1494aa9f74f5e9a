package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/notecard"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(status int, loc Localizer) string {
	if status == http.StatusNotFound {
		return T(loc, "web.error.not_found.title")
	}
	return T(loc, "web.error.server.title")
}

// NotFoundCard is the read-only card floating on the 404 page.
func NotFoundCard(loc Localizer) notecard.ReadOnly {
	return notecard.ReadOnly{
		Content: T(loc, "web.error.not_found.card"),
		Author:  T(loc, "web.error.not_found.author"),
		Color:   notecard.ColorYellow,
	}
}

// ErrorState renders the body of an error page for status.
func ErrorState(status int, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="error-state"`)
		m.attr("data-status", itoa(status))
		m.raw(`><h1 class="error-watermark" aria-hidden="true">`)
		m.intText(status)
		m.raw("</h1>")
		if status == http.StatusNotFound {
			m.raw(`<div class="floating">`)
			m.component(ctx, ReadOnlyCard(NotFoundCard(loc), 0))
			m.raw("</div>")
			m.element("p", "muted", T(loc, "web.error.not_found.caption"))
		} else {
			m.element("h2", "", T(loc, "web.error.server.heading"))
			m.element("p", "muted", T(loc, "web.error.server.caption"))
		}
		m.link("button button-primary", routepath.Root, T(loc, "web.error.return_home"))
		m.raw("</section>")
	})
}
