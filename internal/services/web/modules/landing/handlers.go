package landing

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.WritePage(w, r, pagerender.PublicPage{
		Description: webtemplates.T(loc, "web.meta.description"),
		Body:        webtemplates.LandingPage(h.service.view(), loc),
	})
}
