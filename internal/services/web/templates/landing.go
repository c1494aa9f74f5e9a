package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/notecard"
	"github.com/teamboost/gratitudewall/internal/platform/icons"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// Stat is one headline number; LabelKey names its catalog label.
type Stat struct {
	Value    string
	LabelKey string
	Icon     icons.ID
}

// LandingView is the data drawn on the landing page.
type LandingView struct {
	Stats     []Stat
	Companies []string
	Story     []notecard.ReadOnly
	Preview   []notecard.ReadOnly
}

// LandingPage renders the marketing home page.
func LandingPage(view LandingView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="hero"><div class="hero-inner">`)
		m.element("span", "badge", T(loc, "web.landing.badge"))
		m.raw(`<h1 class="hero-title">`)
		m.element("span", "line", T(loc, "web.landing.headline_top"))
		m.element("span", "line gradient", T(loc, "web.landing.headline_bottom"))
		m.raw("</h1>")
		m.element("p", "hero-subtext", T(loc, "web.landing.subtext"))
		m.raw(`<div class="hero-actions">`)
		m.link("button button-primary", routepath.Dashboard, T(loc, "web.landing.cta_write"))
		m.link("button button-secondary", routepath.Public, T(loc, "web.landing.cta_public"))
		m.raw("</div></div></section>")

		m.raw(`<section class="stats-ticker"><div class="stats-grid">`)
		for _, stat := range view.Stats {
			m.raw(`<div class="stat-card">`)
			statIcon(m, stat.Icon)
			m.element("span", "stat-value", stat.Value)
			m.element("p", "stat-label", T(loc, stat.LabelKey))
			m.raw("</div>")
		}
		m.raw("</div>")
		m.element("h4", "trusted", T(loc, "web.landing.trusted_by"))
		marquee(m, view.Companies)
		m.raw("</section>")

		m.raw(`<section id="story" class="story"><div class="story-text">`)
		m.raw("<h2>")
		m.text(T(loc, "web.landing.story_isolated_lead"))
		m.raw(" ")
		m.element("span", "muted", T(loc, "web.landing.story_isolated"))
		m.raw("</h2>")
		m.element("h2", "", T(loc, "web.landing.story_spark"))
		m.raw("<h2>")
		m.text(T(loc, "web.landing.story_changes"))
		m.raw(" ")
		m.element("span", "gradient", T(loc, "web.landing.story_everything"))
		m.raw("</h2></div>")
		m.component(ctx, ReadOnlyCards(view.Story, "story-swarm"))
		m.raw("</section>")

		m.raw(`<section class="river"><div class="river-heading">`)
		m.element("h2", "", T(loc, "web.landing.river_title"))
		m.element("p", "muted", T(loc, "web.landing.river_subtitle"))
		m.raw("</div>")
		m.component(ctx, ReadOnlyCards(view.Preview, "river-stream"))
		m.raw("</section>")

		m.raw(`<section class="final-cta"><h2 class="cta-title">`)
		m.element("span", "line", T(loc, "web.landing.final_top"))
		m.element("span", "line gradient", T(loc, "web.landing.final_bottom"))
		m.raw("</h2>")
		m.link("button button-primary button-large", routepath.Dashboard, T(loc, "web.nav.get_started"))
		m.raw("</section>")
	})
}

func marquee(m *markup, names []string) {
	m.raw(`<div class="marquee" aria-hidden="true"><div class="marquee-track">`)
	for pass := 0; pass < 2; pass++ {
		for _, name := range names {
			m.element("span", "", name)
		}
	}
	m.raw("</div></div>")
}

func statIcon(m *markup, id icons.ID) {
	if id == "" {
		return
	}
	m.raw(`<span class="stat-icon">`, icons.Use(id), "</span>")
}
