package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/notecard"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// FeedView is the data drawn on the public wall.
type FeedView struct {
	Query string
	Cards []notecard.ReadOnly
}

// FeedTilt alternates a one degree tilt so neighbouring cards lean apart.
func FeedTilt(index int) int {
	if index%2 == 0 {
		return 1
	}
	return -1
}

// FeedPage renders the searchable public wall.
func FeedPage(view FeedView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<header class="feed-header">`)
		m.link("back-link", routepath.Root, T(loc, "web.feed.back_home"))
		m.raw(`<h1 class="feed-title">`)
		m.text(T(loc, "web.feed.title_lead"))
		m.raw(" ")
		m.element("span", "shine", T(loc, "web.feed.title_highlight"))
		m.raw("</h1></header>")
		m.raw(`<form class="command-bar" method="get" role="search"`)
		m.attr("action", routepath.Public)
		m.attr("hx-get", routepath.Public)
		m.raw(` hx-target="#feed-results" hx-select="#feed-results" hx-trigger="input changed delay:250ms from:input, submit" hx-push-url="true"><input type="search"`)
		m.attr("name", routepath.SearchQueryKey)
		m.attr("value", view.Query)
		m.attr("placeholder", T(loc, "web.feed.search_placeholder"))
		m.attr("aria-label", T(loc, "web.feed.search_label"))
		m.raw("></form>")
		m.component(ctx, FeedResults(view, loc))
	})
}

// FeedResults renders the card grid or the empty state.
func FeedResults(view FeedView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section id="feed-results" class="feed-grid">`)
		if len(view.Cards) == 0 {
			m.element("p", "empty-state", T(loc, "web.feed.empty", view.Query))
		}
		for i, card := range view.Cards {
			m.component(ctx, ReadOnlyCard(card, FeedTilt(i)))
		}
		m.raw("</section>")
	})
}
