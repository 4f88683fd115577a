// Agora debate orchestration server — provides the HTTP API, manages queue
// workers, and drives multi-agent debate sessions.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/debatelab/agora/pkg/api"
	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/database"
	"github.com/debatelab/agora/pkg/debate"
	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/events"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/queue"
	"github.com/debatelab/agora/pkg/services"
	"github.com/debatelab/agora/pkg/version"
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

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting agora",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded", "personas", cfg.Stats().Personas)

	// 2. Initialize database
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

	// 3. Domain services
	debateService := services.NewDebateService(dbClient.Client, cfg.Defaults)
	store := services.NewEntStore(dbClient.Client)

	// 4. One-time startup orphan cleanup: requeue debates this pod was
	// running when it last crashed.
	if err := queue.CleanupStartupOrphans(ctx, debateService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Event streaming infrastructure
	broker := events.NewBroker(slog.Default())
	connManager := events.NewConnectionManager(broker, 10*time.Second, slog.Default())
	slog.Info("Event broker initialized")

	// 6. LLM gateway
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized",
		"default_model", llmClient.DefaultModel(),
		"trigger_model", llmClient.TriggerModel())

	// 7. Orchestrator executor and worker pool
	scorer := debate.NewLLMTriggerScorer(llmClient, llmClient.TriggerModel(), prompt.NewBuilder(), slog.Default())
	executor := queue.NewExecutor(debate.OrchestratorDeps{
		Store:        store,
		Publisher:    broker,
		Provider:     llmClient,
		Personas:     cfg.Personas,
		Scorer:       scorer,
		DefaultModel: llmClient.DefaultModel(),
		Logger:       slog.Default(),
	})

	workerPool := queue.NewWorkerPool(podID, debateService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server
	httpServer := api.NewServer(cfg, dbClient, debateService, workerPool, connManager)

	// 9. Run until a shutdown signal or a fatal server error
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		broker.RunHeartbeats(gCtx, events.HeartbeatInterval)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		// Worker pool first: active debates get the graceful window to
		// finish before their orchestrators are stopped.
		done := make(chan struct{})
		go func() {
			workerPool.Stop()
			close(done)
		}()
		select {
		case <-done:
			slog.Info("Worker pool stopped gracefully")
		case <-time.After(cfg.Queue.GracefulShutdownTimeout + 30*time.Second):
			slog.Warn("Shutdown timeout exceeded — incomplete debates will be orphan-recovered")
		}

		// Then drain the HTTP server with its own timeout budget.
		httpCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(httpCtx)
	})

	slog.Info("Agora started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
