package preferences

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/flash"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

const noticeSaved = "web.preferences.notice_saved"

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

// sameOrigin rejects posts without same-origin proof.
func (h handlers) sameOrigin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.RequestSchemePolicy().HasSameOriginProof(r) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func (h handlers) handleTheme(w http.ResponseWriter, r *http.Request) {
	theme, ok := uiprefs.ParseTheme(r.FormValue("theme"))
	if !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.preferences.invalid_theme", "unknown theme"))
		return
	}
	policy := h.RequestSchemePolicy()
	uiprefs.WriteTheme(w, r, theme, policy)
	flash.Write(w, r, flash.NoticeSuccess(noticeSaved), policy)
	h.Logger().Debug("theme updated", zap.String("theme", string(theme)))
	httpx.WriteRedirect(w, r, backTo(r))
}

func (h handlers) handleSidebar(w http.ResponseWriter, r *http.Request) {
	open, err := strconv.ParseBool(strings.TrimSpace(r.FormValue("open")))
	if err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "errors.preferences.invalid_sidebar", "parse sidebar state", err))
		return
	}
	uiprefs.WriteSidebar(w, r, open, h.RequestSchemePolicy())
	httpx.WriteRedirect(w, r, backTo(r))
}

func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	tag, ok := webi18n.Match(r.FormValue(routepath.LanguageQueryKey))
	if !ok {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.preferences.invalid_language", "unsupported language"))
		return
	}
	policy := h.RequestSchemePolicy()
	webi18n.WriteLanguage(w, r, tag, policy)
	flash.Write(w, r, flash.NoticeSuccess(noticeSaved), policy)
	httpx.WriteRedirect(w, r, backTo(r))
}

func backTo(r *http.Request) string {
	return routepath.SafeLocalPath(r.FormValue(routepath.NextQueryKey), routepath.Root)
}
