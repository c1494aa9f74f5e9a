package publicfeed

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
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
	query := normalizeQuery(r.URL.Query().Get(routepath.SearchQueryKey))
	view := webtemplates.FeedView{Query: query, Cards: h.service.search(query)}

	// Search-as-you-type swaps only the result grid.
	if httpx.IsHTMXRequest(r) {
		var buf bytes.Buffer
		if err := webtemplates.FeedResults(view, loc).Render(httpx.RequestContext(r), &buf); err != nil {
			h.Logger().Warn("render public feed results", zap.Error(err))
			h.WriteError(w, r, err)
			return
		}
		_ = httpx.WriteHTML(w, http.StatusOK, buf.Bytes())
		return
	}
	h.WritePage(w, r, pagerender.PublicPage{
		Title: webtemplates.T(loc, "web.feed.title"),
		Body:  webtemplates.FeedPage(view, loc),
	})
}
