package pricing

import (
	"strconv"
	"strings"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

// plan is one tier. A nil price means the tier is quoted, not listed.
type plan struct {
	key          string
	monthly      *int
	yearly       *int
	labelKey     string
	popular      bool
	featureCount int
	ctaKey       string
	href         string
}

func price(v int) *int { return &v }

var plans = []plan{
	{
		key:          "starter",
		monthly:      price(0),
		yearly:       price(0),
		labelKey:     "web.pricing.free",
		featureCount: 5,
		ctaKey:       "web.pricing.cta_get_started",
		href:         routepath.Dashboard,
	},
	{
		key:          "pro",
		monthly:      price(12),
		yearly:       price(10),
		popular:      true,
		featureCount: 7,
		ctaKey:       "web.pricing.cta_trial",
		href:         routepath.Dashboard,
	},
	{
		key:          "enterprise",
		labelKey:     "web.pricing.custom",
		featureCount: 8,
		ctaKey:       "web.pricing.cta_contact",
		href:         "mailto:sales@teamboost.com",
	},
}

// companies scroll in the trust strip.
var companies = []string{"Microsoft", "Google", "Stripe", "Shopify", "Notion", "Linear", "Vercel", "OpenAI"}

// normalizeBilling defaults to yearly for anything but an explicit monthly.
func normalizeBilling(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), routepath.BillingMonthly) {
		return routepath.BillingMonthly
	}
	return routepath.BillingYearly
}

func buildView(billing string) webtemplates.PricingView {
	billing = normalizeBilling(billing)
	view := webtemplates.PricingView{
		Billing:   billing,
		Plans:     make([]webtemplates.PricingPlan, 0, len(plans)),
		Companies: append([]string(nil), companies...),
	}
	for _, p := range plans {
		card := webtemplates.PricingPlan{
			Key:           p.key,
			PriceLabelKey: p.labelKey,
			Popular:       p.popular,
			FeatureCount:  p.featureCount,
			CTAKey:        p.ctaKey,
			Href:          p.href,
		}
		amount := p.monthly
		if billing == routepath.BillingYearly {
			amount = p.yearly
		}
		if p.labelKey == "" && amount != nil {
			card.Price = "$" + strconv.Itoa(*amount)
		}
		if billing == routepath.BillingYearly && p.yearly != nil && *p.yearly > 0 {
			card.BilledAnnually = "$" + strconv.Itoa(*p.yearly*12)
		}
		view.Plans = append(view.Plans, card)
	}
	return view
}
