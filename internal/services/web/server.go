// Package web hosts the TeamBoost browser-facing service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	"github.com/teamboost/gratitudewall/internal/platform/logging"
	"github.com/teamboost/gratitudewall/internal/platform/timeouts"
	webapp "github.com/teamboost/gratitudewall/internal/services/web/app"
	module "github.com/teamboost/gratitudewall/internal/services/web/module"
	"github.com/teamboost/gratitudewall/internal/services/web/modules"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/publicauth"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/httpx"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/observability"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/uiprefs"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
	"github.com/teamboost/gratitudewall/internal/services/web/routepath"
	webstatic "github.com/teamboost/gratitudewall/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// BaseURL is the public origin used for the OAuth callback. Empty derives
	// it from each request.
	BaseURL string

	Sessions         *websession.Codec
	Catalog          *mockdata.Catalog
	IdentityProvider publicauth.IdentityProvider
	DevLogin         bool
	SchemePolicy     requestmeta.SchemePolicy

	Logger         *zap.Logger
	TracerProvider trace.TracerProvider
	Now            func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds a root handler from the default module registry groups.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrNop(cfg.Logger)
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = mockdata.Default()
	}
	principal := newPrincipalResolver(cfg.Sessions, logger)
	deps := module.Dependencies{
		ResolveViewer:      principal.resolveViewer,
		ResolveSignedIn:    principal.resolveSignedIn,
		ResolveUserID:      principal.resolveRequestUserID,
		ResolveLanguage:    principal.resolveRequestLanguage,
		ResolvePreferences: uiprefs.Read,
		Logger:             logger,
		SchemePolicy:       cfg.SchemePolicy,
		Now:                cfg.Now,
	}
	registry := modules.Dependencies{
		Catalog:          catalog,
		Sessions:         cfg.Sessions,
		IdentityProvider: cfg.IdentityProvider,
		DevLogin:         cfg.DevLogin,
		BaseURL:          cfg.BaseURL,
	}
	h, err := webapp.BuildRootHandler(webapp.RootConfig{
		Dependencies:     deps,
		SignedIn:         principal.resolveSignedIn,
		PublicModules:    modules.DefaultPublicModules(registry),
		ProtectedModules: modules.DefaultProtectedModules(registry),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		withRequestPrincipalState(),
		observability.RequestLogger(logger, cfg.TracerProvider),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session codec is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logging.OrNop(cfg.Logger),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server
// stop. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	s.logger.Info("web server listening", zap.String("addr", listener.Addr().String()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		s.logger.Info("web server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
