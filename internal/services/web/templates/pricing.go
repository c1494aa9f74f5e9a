package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

// PricingPlan is one plan card. Catalog keys are derived from Key.
type PricingPlan struct {
	Key            string
	Price          string
	PriceLabelKey  string
	BilledAnnually string
	Popular        bool
	FeatureCount   int
	CTAKey         string
	Href           string
}

// PricingView is the data drawn on the pricing page.
type PricingView struct {
	Billing   string
	Plans     []PricingPlan
	Companies []string
}

// PricingPage renders plans for the selected billing cycle.
func PricingPage(view PricingView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.raw(`<section class="pricing-hero">`)
		m.element("span", "badge", T(loc, "web.pricing.badge"))
		m.raw(`<h1 class="hero-title">`)
		m.element("span", "line", T(loc, "web.pricing.headline_top"))
		m.element("span", "line gradient", T(loc, "web.pricing.headline_bottom"))
		m.raw("</h1>")
		m.element("p", "hero-subtext", T(loc, "web.pricing.subtext"))
		m.raw(`<nav class="billing-toggle">`)
		billingOption(m, view.Billing, routepath.BillingMonthly, T(loc, "web.pricing.monthly"), "")
		billingOption(m, view.Billing, routepath.BillingYearly, T(loc, "web.pricing.yearly"), T(loc, "web.pricing.yearly_discount"))
		m.raw("</nav></section>")

		m.raw(`<section class="pricing-grid">`)
		for _, plan := range view.Plans {
			pricingCard(m, plan, loc)
		}
		m.raw("</section>")

		m.raw(`<section class="pricing-trust">`)
		m.element("p", "trusted", T(loc, "web.pricing.trusted_by"))
		marquee(m, view.Companies)
		m.raw(`</section><section class="pricing-faq">`)
		m.element("span", "badge", T(loc, "web.pricing.support_online"))
		m.element("h3", "", T(loc, "web.pricing.questions_title"))
		m.element("p", "muted", T(loc, "web.pricing.questions_body"))
		m.link("button button-secondary", "#", T(loc, "web.pricing.chat_sales"))
		m.raw("</section>")
	})
}

func billingOption(m *markup, current string, billing string, label string, badge string) {
	m.raw("<a")
	m.attr("href", routepath.PricingWithBilling(billing))
	if current == billing {
		m.raw(` class="active" aria-current="true"`)
	}
	m.raw(">")
	m.text(label)
	if badge != "" {
		m.raw(" ")
		m.element("span", "discount", badge)
	}
	m.raw("</a>")
}

func pricingCard(m *markup, plan PricingPlan, loc Localizer) {
	prefix := "web.pricing.plan." + plan.Key
	class := "pricing-card"
	if plan.Popular {
		class += " popular"
	}
	m.raw("<article")
	m.attr("class", class)
	m.attr("data-plan", plan.Key)
	m.raw(">")
	if plan.Popular {
		m.element("span", "popular-badge", T(loc, "web.pricing.most_popular"))
	}
	m.element("h3", "", T(loc, prefix+".name"))
	m.element("p", "muted", T(loc, prefix+".description"))
	m.raw(`<div class="price">`)
	if plan.PriceLabelKey != "" {
		m.element("span", "price-amount", T(loc, plan.PriceLabelKey))
	} else {
		m.element("span", "price-amount", plan.Price)
		m.element("span", "price-unit", T(loc, "web.pricing.per_user_month"))
	}
	m.raw("</div>")
	if plan.BilledAnnually != "" {
		m.element("p", "billed", T(loc, "web.pricing.billed_annually", plan.BilledAnnually))
	}
	m.raw(`<ul class="features">`)
	for i := 1; i <= plan.FeatureCount; i++ {
		m.element("li", "", T(loc, prefix+".feature_"+itoa(i)))
	}
	m.raw("</ul>")
	buttonClass := "button button-secondary"
	if plan.Popular {
		buttonClass = "button button-primary"
	}
	m.link(buttonClass, plan.Href, T(loc, plan.CTAKey))
	m.raw("</article>")
}
