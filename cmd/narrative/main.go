package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spacesedan/psychprint/config"
	"github.com/spacesedan/psychprint/internal/clients"
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
		slog.Error("[Narrative] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client, err := clients.NewNarrativeClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		slog.Error("[Narrative] Client setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	prompt, err := os.ReadFile(cfg.PromptPath)
	if err != nil {
		slog.Error("[Narrative] Could not read prompt", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corpus, tokens, err := collectCorpus(cfg.ExportDir)
	if err != nil {
		slog.Error("[Narrative] Corpus collection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Narrative] Corpus collected",
		slog.Int("chars", len(corpus)),
		slog.Int("estimated_tokens", tokens))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	text, err := client.Summarize(ctx, string(prompt), corpus)
	if err != nil {
		slog.Error("[Narrative] Generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.WriteFile(cfg.NarrativeOutput, []byte(text), 0o644); err != nil {
		slog.Error("[Narrative] Could not write output", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Narrative] Profile written", slog.String("path", cfg.NarrativeOutput))
}

// collectCorpus concatenates every .md and .json file under root, each
// prefixed with a FILE header, in sorted path order. Token estimate is
// roughly four characters per token.
func collectCorpus(root string) (string, int, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("[Narrative] Skipping unreadable file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		fmt.Fprintf(&b, "\n\n### FILE: %s\n\n%s", rel, raw)
	}

	corpus := b.String()
	return corpus, len(corpus) / 4, nil
}
