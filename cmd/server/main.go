// cmd/server/main.go
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/sozercan/inkwell/internal/app"
	"github.com/sozercan/inkwell/internal/config"
	"github.com/sozercan/inkwell/internal/logging"
	"github.com/sozercan/inkwell/internal/server"
)

func main() {
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.Install(cfg, os.Stderr)

	analyzer, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to create analyzer: %v", err)
	}

	srv := server.New(cfg.Server, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
