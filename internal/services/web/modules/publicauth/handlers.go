package publicauth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/teamboost/gratitudewall/internal/services/web/platform/errors"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/pagerender"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/publichandler"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/sessioncookie"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webtemplates "github.com/teamboost/gratitudewall/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
	baseURL string
}

func newHandlers(s service, base publichandler.Base, baseURL string) handlers {
	return handlers{Base: base, service: s, baseURL: baseURL}
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get(routepath.NextQueryKey)
	if h.IsViewerSignedIn(r) {
		httpx.WriteRedirect(w, r, routepath.SafeNext(next))
		return
	}
	h.writeLogin(w, r, http.StatusOK, loginErrorKey(r.URL.Query().Get(routepath.AuthErrorQueryKey)), next)
}

func (h handlers) writeLogin(w http.ResponseWriter, r *http.Request, status int, errorKey string, next string) {
	loc, _ := h.PageLocalizer(w, r)
	safeNext := routepath.SafeNext(next)
	if safeNext == routepath.Dashboard {
		safeNext = ""
	}
	h.WritePage(w, r, pagerender.PublicPage{
		Title:      webtemplates.T(loc, "web.login.page_title"),
		StatusCode: status,
		Bare:       true,
		Body: webtemplates.LoginPage(webtemplates.LoginView{
			Next:         safeNext,
			ErrorKey:     errorKey,
			EntraEnabled: h.service.entraEnabled(),
			DevEnabled:   h.service.devEnabled(),
		}, loc),
	})
}

func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	policy := h.RequestSchemePolicy()
	if !policy.HasSameOriginProof(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	next := r.FormValue(routepath.NextQueryKey)

	switch {
	case h.service.entraEnabled():
		start, err := h.service.beginSignIn(next, h.callbackURL(r))
		if err != nil {
			h.Logger().Error("begin sign-in", zap.Error(err))
			h.WriteError(w, r, err)
			return
		}
		sessioncookie.Flow.Write(w, r, start.FlowToken, h.service.sessions.FlowTTL(), policy)
		// The provider page is off-site, so HTMX must do a full navigation.
		httpx.WriteRedirect(w, r, start.Location)
	case h.service.devEnabled():
		principal, err := h.service.devPrincipal()
		if err != nil {
			h.WriteError(w, r, err)
			return
		}
		h.startSession(w, r, principal, routepath.SafeNext(next))
	default:
		h.writeLogin(w, r, http.StatusServiceUnavailable, "", next)
	}
}

func (h handlers) handleCallback(w http.ResponseWriter, r *http.Request) {
	policy := h.RequestSchemePolicy()
	query := r.URL.Query()
	flowToken, _ := sessioncookie.Flow.Read(r)
	sessioncookie.Flow.Clear(w, r, policy)

	if providerErr := strings.TrimSpace(query.Get("error")); providerErr != "" {
		h.Logger().Info("identity provider denied sign-in", zap.String("error", providerErr))
		httpx.WriteRedirect(w, r, routepath.LoginWithError(routepath.AuthErrorProviderDenied))
		return
	}

	principal, next, err := h.service.completeSignIn(r.Context(), flowToken, query.Get("state"), query.Get("code"), h.callbackURL(r))
	if err != nil {
		h.Logger().Warn("complete sign-in", zap.Error(err))
		code := routepath.AuthErrorSignInFailed
		switch apperrors.KindOf(err) {
		case apperrors.KindForbidden:
			code = routepath.AuthErrorStateMismatch
		case apperrors.KindUnavailable:
			code = routepath.AuthErrorNotConfigured
		}
		httpx.WriteRedirect(w, r, routepath.LoginWithError(code))
		return
	}
	h.startSession(w, r, principal, next)
}

func (h handlers) startSession(w http.ResponseWriter, r *http.Request, principal websession.Principal, next string) {
	token, err := h.service.issueSession(principal)
	if err != nil {
		h.Logger().Error("issue session", zap.String("user_id", principal.UserID), zap.Error(err))
		httpx.WriteRedirect(w, r, routepath.LoginWithError(routepath.AuthErrorSignInFailed))
		return
	}
	sessioncookie.Session.Write(w, r, token, h.service.sessions.TTL(), h.RequestSchemePolicy())
	h.Logger().Info("signed in", zap.String("user_id", principal.UserID))
	httpx.WriteRedirect(w, r, next)
}

func (h handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	policy := h.RequestSchemePolicy()
	if !policy.HasSameOriginProof(r) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	sessioncookie.Session.Clear(w, r, policy)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) callbackURL(r *http.Request) string {
	base := h.baseURL
	if base == "" {
		base = h.RequestSchemePolicy().BaseURL(r)
	}
	return base + routepath.AuthCallbackEntra
}
