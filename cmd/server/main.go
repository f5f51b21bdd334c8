package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/psychprint/config"
	httpapi "github.com/spacesedan/psychprint/internal/http"
	"github.com/spacesedan/psychprint/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[Server] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers := httpapi.NewHandlers(httpapi.NewBrowser(cfg.ExportDir), cfg.ProfileOutput)
	router := httpapi.NewRouter(handlers)

	slog.Info("[Server] Listening", slog.String("addr", cfg.ServerAddr))
	if err := router.Run(cfg.ServerAddr); err != nil {
		slog.Error("[Server] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
