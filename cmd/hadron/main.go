// Hadron controller — serves the pipeline HTTP API, runs the queue
// workers that drive CR runs through the stage graph, and streams run
// events to clients.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/api"
	"github.com/CollideNV/hadron/pkg/cleanup"
	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/database"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/pipeline"
	"github.com/CollideNV/hadron/pkg/queue"
	"github.com/CollideNV/hadron/pkg/services"
	"github.com/CollideNV/hadron/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildAgentChain registers every provider an API key (or sidecar
// address) is configured for. The chain order comes from the pipeline
// config; a model's own provider is always tried first.
func buildAgentChain(ctx context.Context, cfg *config.Config) (*agent.Chain, func(), error) {
	chain := agent.NewChain(cfg.Pipeline.ProviderChain, config.ProviderForModel)
	var closers []func()

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		chain.Register("anthropic", agent.NewAnthropicBackend(key), "claude-sonnet-4-5", 1.0, 2)
		slog.Info("Registered agent provider", "provider", "anthropic")
	}

	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		backend, err := agent.NewGeminiBackend(ctx, key)
		if err != nil {
			return nil, nil, err
		}
		chain.Register("gemini", backend, "gemini-2.5-pro", 1.0, 2)
		slog.Info("Registered agent provider", "provider", "gemini")
	}

	// Optional gRPC sidecar for locally hosted or proxied models.
	if addr := os.Getenv("AGENT_GRPC_ADDR"); addr != "" {
		backend, err := agent.NewGRPCBackend(addr)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := backend.Close(); err != nil {
				slog.Error("Error closing gRPC agent backend", "error", err)
			}
		})
		chain.Register("grpc", backend, getEnv("AGENT_GRPC_MODEL", "local"), 2.0, 4)
		slog.Info("Registered agent provider", "provider", "grpc", "addr", addr)
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	return chain, closeAll, nil
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to .env file with environment overrides")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting hadron controller",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID)

	ctx := context.Background()

	// 1. Runtime configuration (defaults + env overrides)
	cfg := config.Initialize()

	// 2. Database (connect, migrate)
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

	// 3. One-time startup orphan cleanup: re-queue any runs this pod
	// left in status running before its last restart.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them too
	}

	// 4. Domain services
	runService := services.NewRunService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure: publisher appends + NOTIFYs, the
	// listener holds the dedicated LISTEN connection, the broker fans
	// out to WebSocket clients, the streamer serves SSE catchup.
	publisher := events.NewPublisher(dbClient.DB())
	broker := events.NewBroker(eventService, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	broker.SetListener(notifyListener)

	streamer := events.NewStreamer(broker, eventService)
	slog.Info("Streaming infrastructure initialized")

	// 6. Intervention registry (resume overrides, operator guidance)
	registry := interventions.NewRegistry(dbClient.DB(), publisher)

	// 7. Agent provider chain
	agents, closeAgents, err := buildAgentChain(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize agent providers", "error", err)
		os.Exit(1)
	}
	defer closeAgents()

	// 8. Pipeline runtime + executor
	gitManager := git.NewManager(cfg.Pipeline.WorkspaceDir)
	runtime := &pipeline.Runtime{
		Runs:          runService,
		Checkpoints:   checkpointService,
		Conversations: conversationService,
		Publisher:     publisher,
		Registry:      registry,
		Agents:        agents,
		Git:           gitManager,
		Logger:        slog.Default().With("component", "pipeline"),
	}
	executor := pipeline.NewExecutor(runtime)

	// 9. Worker pool (before the HTTP server, so readyz reflects it)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, runService, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, eventService, conversationService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 11. HTTP server
	server := api.NewServer(api.Deps{
		PipelineConfig: cfg.Pipeline,
		DB:             dbClient,
		Runs:           runService,
		Checkpoints:    checkpointService,
		Conversations:  conversationService,
		Audit:          auditService,
		Registry:       registry,
		Publisher:      publisher,
		Streamer:       streamer,
		Broker:         broker,
		Pool:           workerPool,
	})
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

	slog.Info("Hadron started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: give active runs a chance to reach a
	// checkpoint, then cancel; anything still running is re-queued by
	// orphan recovery.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, cancelling active runs")
		workerPool.CancelActiveRuns()
		<-done
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
