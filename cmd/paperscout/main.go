// PaperScout server: HTTP API for paper ingest, summary generation,
// research agents, RAG, and recommendations.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rainzero1960/paperscout/pkg/api"
	"github.com/rainzero1960/paperscout/pkg/cleanup"
	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/database"
	"github.com/rainzero1960/paperscout/pkg/jobs"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/paper"
	"github.com/rainzero1960/paperscout/pkg/prompt"
	"github.com/rainzero1960/paperscout/pkg/services"
	"github.com/rainzero1960/paperscout/pkg/summary"
	"github.com/rainzero1960/paperscout/pkg/tagging"
	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/rainzero1960/paperscout/pkg/version"
	"github.com/rainzero1960/paperscout/pkg/webtool"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8000")
	slog.Info("Starting PaperScout", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. LLM gateway and embedder
	var providers []llm.Provider
	if cfg.LLM.GeminiAPIKey != "" {
		providers = append(providers, llm.NewGeminiProvider(cfg.LLM.GeminiAPIKey))
	}
	if cfg.LLM.OpenAIAPIKey != "" {
		providers = append(providers, llm.NewOpenAIProvider(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL))
	}
	gateway, err := llm.NewGateway(cfg.LLM, providers...)
	if err != nil {
		slog.Error("Failed to initialize LLM gateway", "error", err)
		os.Exit(1)
	}
	embedder := llm.NewOpenAIEmbedder(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL, cfg.LLM.EmbeddingModel)
	slog.Info("LLM gateway initialized",
		"primary", cfg.LLM.Primary, "fallback", cfg.LLM.Fallback)

	// 4. Vector store
	store, err := vector.NewStore(cfg.Vector, dbClient.DB())
	if err != nil {
		slog.Error("Failed to initialize vector store", "error", err)
		os.Exit(1)
	}
	indexer := vector.NewIndexer(embedder, store, cfg.Vector.BatchSize)
	slog.Info("Vector store initialized", "backend", cfg.Vector.Backend)

	// 5. Domain services
	registry := jobs.NewRegistry()
	web := webtool.NewClient(cfg.WebTool)
	arxiv := paper.NewClient(30*time.Second, "")

	papers := services.NewPaperService(dbClient.Client, arxiv, store)
	prompts := services.NewPromptService(dbClient.Client)
	resolver := prompt.NewResolver(prompts)

	repo := services.NewSummaryRepo(dbClient.Client)
	coordinator := summary.NewCoordinator(repo, cfg.Coordinator)
	bulk := summary.NewBulkRunner(cfg.Bulk, registry)
	summaries := services.NewSummaryService(dbClient.Client, papers, coordinator, gateway,
		resolver, indexer, tagging.NewTagger(gateway, resolver), registry, bulk, cfg.Coordinator)

	svc := api.Services{
		Users:     services.NewUserService(dbClient.Client),
		Papers:    papers,
		Prompts:   prompts,
		Summaries: summaries,
		Research:  services.NewResearchService(dbClient.Client, gateway, resolver, indexer, web, cfg.Research),
		RAG:       services.NewRAGService(dbClient.Client, gateway, resolver, indexer, web, registry, cfg.Research),
		Chat:      services.NewPaperChatService(dbClient.Client, papers, gateway, resolver, cfg.Coordinator),
		Recommend: services.NewRecommendService(dbClient.Client, papers, store),
	}
	slog.Info("Services initialized")

	// 6. Background janitor
	janitor := cleanup.NewService(cfg.Retention, dbClient.Client)
	janitor.Start(ctx)
	defer janitor.Stop()

	// 7. HTTP server (non-blocking)
	server := api.NewServer(dbClient, svc, registry)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown. The bulk budget bounds how long in-flight
	// requests may take to drain.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Bulk.GracefulShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
