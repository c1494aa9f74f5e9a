package pricing

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	view := buildView(r.URL.Query().Get(routepath.BillingQueryKey))
	h.WritePage(w, r, pagerender.PublicPage{
		Title: webtemplates.T(loc, "web.pricing.title"),
		Body:  webtemplates.PricingPage(view, loc),
	})
}
