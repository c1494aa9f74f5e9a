// Package cmd holds the startup plumbing shared by service commands: config
// loading and the telemetry lifecycle around a run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teamboost/gratitudewall/internal/platform/config"
	"github.com/teamboost/gratitudewall/internal/platform/logging"
	"github.com/teamboost/gratitudewall/internal/platform/otel"
)

// ServiceWeb identifies the web service in telemetry and logs.
const ServiceWeb = "web"

const defaultShutdownTimeout = 5 * time.Second

// Service describes the process being started.
type Service struct {
	Name string
	// Logger receives telemetry lifecycle errors. Nil discards them.
	Logger *zap.Logger
	// ShutdownTimeout bounds the telemetry flush on exit.
	ShutdownTimeout time.Duration
}

// ParseConfig fills cfg from environment variables.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags over env-derived defaults.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// Run installs telemetry for svc, calls run, and flushes telemetry when run
// returns.
func Run(ctx context.Context, svc Service, run func(context.Context) error) error {
	name := strings.TrimSpace(svc.Name)
	switch {
	case name == "":
		return errors.New("service name is required")
	case run == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, name)
	if err != nil {
		return err
	}
	defer flush(name, svc, shutdown)
	return run(ctx)
}

func flush(name string, svc Service, shutdown func(context.Context) error) {
	timeout := svc.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logging.OrNop(svc.Logger).Warn("otel shutdown", zap.String("service", name), zap.Error(err))
	}
}
