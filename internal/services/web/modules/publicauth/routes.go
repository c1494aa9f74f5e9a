package publicauth

import (
	"net/http"

	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
)

func registerLoginRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.LoginPrefix+"{$}", h.handleLogin)
	mux.HandleFunc(routepath.LoginPrefix+"{rest...}", h.WriteNotFound)
}

func registerAuthRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignIn, h.handleSignIn)
	mux.HandleFunc(http.MethodGet+" "+routepath.AuthCallbackEntra, h.handleCallback)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthSignOut, h.handleSignOut)
	mux.HandleFunc(routepath.AuthPrefix+"{rest...}", h.WriteNotFound)
}
