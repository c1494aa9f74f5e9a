// Package web parses web command configuration and launches the gratitude
// wall web service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/mockdata"
	entrypoint "github.com/teamboost/gratitudewall/internal/platform/cmd"
	"github.com/teamboost/gratitudewall/internal/platform/config"
	"github.com/teamboost/gratitudewall/internal/platform/logging"
	"github.com/teamboost/gratitudewall/internal/services/web"
	"github.com/teamboost/gratitudewall/internal/services/web/modules/publicauth"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/requestmeta"
	"github.com/teamboost/gratitudewall/internal/services/web/platform/websession"
)

// devAuthSecret signs sessions in dev mode when AUTH_SECRET is unset.
const devAuthSecret = "teamboost-development-secret-do-not-deploy"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"GRATITUDE_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	BaseURL  string `env:"GRATITUDE_WEB_BASE_URL" envDefault:"http://localhost:3000"`

	AuthSecret        string `env:"AUTH_SECRET"`
	EntraClientID     string `env:"AUTH_MICROSOFT_ENTRA_ID_ID"`
	EntraClientSecret string `env:"AUTH_MICROSOFT_ENTRA_ID_SECRET"`
	EntraTenantID     string `env:"AUTH_MICROSOFT_ENTRA_ID_TENANT_ID"`

	// Environment prefers GRATITUDE_WEB_ENV and falls back to ENVIRONMENT.
	Environment       string `env:"GRATITUDE_WEB_ENV"`
	GlobalEnvironment string `env:"ENVIRONMENT"`
	LogLevel          string `env:"GRATITUDE_WEB_LOG_LEVEL"`

	DevLogin            bool          `env:"GRATITUDE_WEB_DEV_LOGIN"`
	SessionTTL          time.Duration `env:"GRATITUDE_WEB_SESSION_TTL" envDefault:"720h"`
	TrustForwardedProto bool          `env:"GRATITUDE_WEB_TRUST_FORWARDED_PROTO"`
}

// Env resolves the deployment environment.
func (c Config) Env() config.Environment {
	if strings.TrimSpace(c.Environment) != "" {
		return config.ParseEnvironment(c.Environment)
	}
	return config.ParseEnvironment(c.GlobalEnvironment)
}

// Entra returns the Microsoft Entra ID credentials.
func (c Config) Entra() publicauth.EntraConfig {
	return publicauth.EntraConfig{
		ClientID:     c.EntraClientID,
		ClientSecret: c.EntraClientSecret,
		TenantID:     c.EntraTenantID,
	}
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Public base URL used for OAuth callbacks")
	fs.StringVar(&cfg.Environment, "env", cfg.Environment, "Deployment environment (dev or production)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	fs.BoolVar(&cfg.DevLogin, "dev-login", cfg.DevLogin, "Enable development sign-in as the first admin")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session cookie lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Options{
		Service: entrypoint.ServiceWeb,
		Debug:   cfg.Env().IsDev(),
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.Run(ctx, entrypoint.Service{Name: entrypoint.ServiceWeb, Logger: logger}, func(ctx context.Context) error {
		serverCfg, err := serverConfig(cfg, logger)
		if err != nil {
			return err
		}
		server, err := web.NewServer(ctx, serverCfg)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// serverConfig resolves secrets and sign-in methods into a web.Config.
func serverConfig(cfg Config, logger *zap.Logger) (web.Config, error) {
	logger = logging.OrNop(logger)
	env := cfg.Env()

	secret := strings.TrimSpace(cfg.AuthSecret)
	if secret == "" {
		if !env.IsDev() {
			return web.Config{}, errors.New("AUTH_SECRET is required outside dev")
		}
		logger.Warn("AUTH_SECRET is unset, using the development signing secret")
		secret = devAuthSecret
	}
	sessions, err := websession.NewCodec(websession.Config{
		Secret: secret,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return web.Config{}, fmt.Errorf("init session codec: %w", err)
	}

	var provider publicauth.IdentityProvider
	if entra := cfg.Entra(); entra.Enabled() {
		provider, err = publicauth.NewEntraProvider(entra, nil)
		if err != nil {
			return web.Config{}, fmt.Errorf("init entra provider: %w", err)
		}
	} else {
		logger.Info("microsoft entra id sign-in disabled")
	}
	if cfg.DevLogin {
		logger.Warn("development sign-in enabled")
	}

	return web.Config{
		HTTPAddr:         cfg.HTTPAddr,
		BaseURL:          strings.TrimSpace(cfg.BaseURL),
		Sessions:         sessions,
		Catalog:          mockdata.Default(),
		IdentityProvider: provider,
		DevLogin:         cfg.DevLogin,
		SchemePolicy:     requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:           logger,
		TracerProvider:   otel.GetTracerProvider(),
	}, nil
}
