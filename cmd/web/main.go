// Command web serves the TeamBoost gratitude wall, both the public pages and
// the dashboard behind Microsoft Entra ID sign-in.
//
// Settings come from GRATITUDE_WEB_* and AUTH_* environment variables and can
// be overridden with flags; see -help. SIGINT or SIGTERM drains in-flight
// requests before exit.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/teamboost/gratitudewall/internal/cmd/web"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
