package web

import (
	"flag"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:3000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:3000")
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:3000")
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Fatalf("SessionTTL = %s, want %s", cfg.SessionTTL, 720*time.Hour)
	}
	if cfg.DevLogin {
		t.Fatalf("DevLogin = true, want false")
	}
	if cfg.Env().IsDev() {
		t.Fatalf("Env() = %q, want production", cfg.Env())
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("GRATITUDE_WEB_HTTP_ADDR", "0.0.0.0:8080")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("AUTH_MICROSOFT_ENTRA_ID_ID", "client")
	t.Setenv("AUTH_MICROSOFT_ENTRA_ID_SECRET", "secret")
	t.Setenv("AUTH_MICROSOFT_ENTRA_ID_TENANT_ID", "tenant")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-base-url", "https://wall.example.test",
		"-dev-login",
		"-session-ttl", "12h",
		"-trust-forwarded-proto",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:8080")
	}
	if cfg.BaseURL != "https://wall.example.test" {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, "https://wall.example.test")
	}
	if !cfg.DevLogin || !cfg.TrustForwardedProto {
		t.Fatalf("DevLogin/TrustForwardedProto = %t/%t, want true/true", cfg.DevLogin, cfg.TrustForwardedProto)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("SessionTTL = %s, want %s", cfg.SessionTTL, 12*time.Hour)
	}
	if !cfg.Env().IsDev() {
		t.Fatalf("Env() = %q, want dev", cfg.Env())
	}
	if !cfg.Entra().Enabled() {
		t.Fatalf("Entra() not enabled")
	}
}

func TestEnvPrefersServiceEnvironment(t *testing.T) {
	t.Parallel()

	cfg := Config{Environment: "production", GlobalEnvironment: "dev"}
	if cfg.Env().IsDev() {
		t.Fatalf("Env() = %q, want production", cfg.Env())
	}
}

func TestServerConfigRequiresSecretOutsideDev(t *testing.T) {
	t.Parallel()

	if _, err := serverConfig(Config{HTTPAddr: "localhost:3000"}, nil); err == nil {
		t.Fatalf("expected error without AUTH_SECRET in production")
	}
}

func TestServerConfigFallsBackToDevSecret(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	cfg, err := serverConfig(Config{HTTPAddr: "localhost:3000", Environment: "dev", DevLogin: true}, zap.New(core))
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.Sessions == nil || cfg.Catalog == nil {
		t.Fatalf("serverConfig() missing sessions or catalog")
	}
	if cfg.IdentityProvider != nil {
		t.Fatalf("IdentityProvider set without entra credentials")
	}
	if !cfg.DevLogin {
		t.Fatalf("DevLogin = false, want true")
	}
	if got := logs.FilterMessage("AUTH_SECRET is unset, using the development signing secret").Len(); got != 1 {
		t.Fatalf("secret warning count = %d, want 1", got)
	}
}

func TestServerConfigBuildsEntraProvider(t *testing.T) {
	t.Parallel()

	cfg, err := serverConfig(Config{
		HTTPAddr:            "localhost:3000",
		AuthSecret:          "a-production-secret-value",
		EntraClientID:       "client",
		EntraClientSecret:   "secret",
		EntraTenantID:       "tenant",
		SessionTTL:          time.Hour,
		TrustForwardedProto: true,
	}, nil)
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.IdentityProvider == nil {
		t.Fatalf("expected entra identity provider")
	}
	if cfg.Sessions.TTL() != time.Hour {
		t.Fatalf("session TTL = %s, want %s", cfg.Sessions.TTL(), time.Hour)
	}
	if !cfg.SchemePolicy.TrustForwardedProto {
		t.Fatalf("TrustForwardedProto = false, want true")
	}
}
