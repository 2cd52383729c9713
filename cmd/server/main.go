package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/api"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/config"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/gen"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/jobs"
	"github.com/MohanKrishnaTeja/jobAnalyzer/internal/pipeline"
	"github.com/MohanKrishnaTeja/jobAnalyzer/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	slog.Info("Starting curriculum analyzer...")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	provider := buildProvider(context.Background(), cfg)
	extractor := gen.NewExtractor(provider)
	if !extractor.Available() {
		slog.Warn("Generative backend unavailable, analysis endpoints will fail soft")
	}
	if g, ok := provider.(*gen.Gemini); ok {
		defer g.Close()
	}

	searcher := jobs.NewClient(
		cfg.Search.APIURL,
		cfg.Search.APIKey,
		cfg.Search.Location,
		cfg.Search.Sources,
		cfg.Search.ResultsPerRole,
	)
	aggregator := jobs.NewAggregator(searcher)
	pipe := pipeline.New(extractor, aggregator)

	server := api.NewServer(cfg.Port, extractor, aggregator, pipe)

	slog.Info("Server initialized", "port", cfg.Port, "provider", cfg.GenProvider)
	if err := server.Start(); err != nil {
		slog.Error("Error starting API server", "error", err)
		os.Exit(1)
	}
}

// buildProvider never aborts the process. A missing key or a failed client
// init leaves the service up with generation degraded.
func buildProvider(ctx context.Context, cfg *config.Config) gen.Provider {
	switch cfg.GenProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			slog.Error("OpenAI API key not found in environment variables")
			return nil
		}
		return gen.NewOpenAI(cfg.OpenAIKey)
	default:
		if cfg.GeminiKey == "" {
			slog.Error("Gemini API key not found in environment variables")
			return nil
		}
		client, err := gen.NewGemini(ctx, cfg.GeminiKey)
		if err != nil {
			slog.Error("Failed to create Gemini client", "error", err)
			return nil
		}
		return client
	}
}
