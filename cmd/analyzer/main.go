package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/psychprint/config"
	"github.com/spacesedan/psychprint/internal/clients"
	"github.com/spacesedan/psychprint/internal/export"
	"github.com/spacesedan/psychprint/internal/logging"
	"github.com/spacesedan/psychprint/internal/report"
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
		slog.Error("[Analyzer] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := export.NewDirSource(cfg.ExportDir)
	if err != nil {
		slog.Error("[Analyzer] Export not found", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for name, present := range src.ValidateStructure() {
		if !present {
			slog.Warn("[Analyzer] Export directory missing", slog.String("dir", name))
		}
	}

	var opts []report.Option
	if cfg.OpenAIAPIKey != "" {
		client, err := clients.NewNarrativeClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			slog.Warn("[Analyzer] Narrative client unavailable", slog.String("error", err.Error()))
		} else if prompt, err := os.ReadFile(cfg.PromptPath); err != nil {
			slog.Warn("[Analyzer] Prompt file unavailable, skipping narrative",
				slog.String("path", cfg.PromptPath),
				slog.String("error", err.Error()))
		} else {
			opts = append(opts, report.WithSummarizer(client, string(prompt)))
		}
	}

	pipeline := report.NewPipeline(opts...)
	profile, err := pipeline.Run(ctx, src)
	if err != nil {
		slog.Error("[Analyzer] Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	profile.ExportPath = cfg.ExportDir

	if err := report.WriteJSON(profile, cfg.ProfileOutput); err != nil {
		slog.Error("[Analyzer] Could not write results", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(report.Summary(profile))
	slog.Info("[Analyzer] Results written", slog.String("path", cfg.ProfileOutput))
}
