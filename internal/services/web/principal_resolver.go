package web

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/platform/logging"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	webi18n "github.com/teamboost/gratitudewall/internal/services/web/platform/i18n"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/sessioncookie"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
)

// requestPrincipalState memoizes session resolution for one request.
type requestPrincipalState struct {
	principalOnce sync.Once
	principal     websession.Principal
	signedIn      bool
	languageOnce  sync.Once
	language      string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessions *websession.Codec
	logger   *zap.Logger
}

func newPrincipalResolver(sessions *websession.Codec, logger *zap.Logger) principalResolver {
	return principalResolver{sessions: sessions, logger: logging.OrNop(logger)}
}

func (r principalResolver) resolvePrincipalUncached(req *http.Request) (websession.Principal, bool) {
	if req == nil || r.sessions == nil {
		return websession.Principal{}, false
	}
	token, ok := sessioncookie.Session.Read(req)
	if !ok {
		return websession.Principal{}, false
	}
	principal, err := r.sessions.ParseSession(token)
	if err != nil {
		r.logger.Debug("reject session cookie", zap.Error(err))
		return websession.Principal{}, false
	}
	return principal, true
}

func (r principalResolver) resolvePrincipal(req *http.Request) (websession.Principal, bool) {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.principalOnce.Do(func() {
			state.principal, state.signedIn = r.resolvePrincipalUncached(req)
		})
		return state.principal, state.signedIn
	}
	return r.resolvePrincipalUncached(req)
}

func (r principalResolver) resolveSignedIn(req *http.Request) bool {
	_, ok := r.resolvePrincipal(req)
	return ok
}

func (r principalResolver) resolveRequestUserID(req *http.Request) string {
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return ""
	}
	return principal.UserID
}

func (r principalResolver) resolveViewer(req *http.Request) module.Viewer {
	principal, ok := r.resolvePrincipal(req)
	if !ok {
		return module.Viewer{}
	}
	viewer := module.Viewer{
		UserID:      principal.UserID,
		DisplayName: strings.TrimSpace(principal.Name),
		Email:       strings.TrimSpace(principal.Email),
		AvatarURL:   strings.TrimSpace(principal.AvatarURL),
	}
	if viewer.DisplayName == "" {
		viewer.DisplayName = viewer.Email
	}
	return viewer
}

func (r principalResolver) resolveRequestLanguage(req *http.Request) string {
	if state := requestPrincipalStateFromRequest(req); state != nil {
		state.languageOnce.Do(func() {
			state.language = webi18n.ResolveLanguage(req)
		})
		return state.language
	}
	return webi18n.ResolveLanguage(req)
}

func withRequestPrincipalState() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r == nil {
				next.ServeHTTP(w, r)
				return
			}
			state := &requestPrincipalState{}
			ctx := context.WithValue(r.Context(), requestPrincipalStateKey{}, state)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestPrincipalStateFromRequest(r *http.Request) *requestPrincipalState {
	if r == nil {
		return nil
	}
	return requestPrincipalStateFromContext(r.Context())
}

func requestPrincipalStateFromContext(ctx context.Context) *requestPrincipalState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestPrincipalStateKey{}).(*requestPrincipalState)
	return state
}
