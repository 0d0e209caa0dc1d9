package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fractional-quest-backend/config"
	_ "fractional-quest-backend/docs" // Important for Swagger
	v1 "fractional-quest-backend/internal/delivery/http/v1"
	"fractional-quest-backend/internal/delivery/mcptools"
	"fractional-quest-backend/internal/repository/memory"
	"fractional-quest-backend/internal/usecase"
	"fractional-quest-backend/pkg/logger"

	"github.com/mark3labs/mcp-go/server"
)

const version = "0.1.0"

// @title           Fractional Quest Agent API
// @version         0.1.0
// @description     Onboarding tools for the Fractional Quest career assistant.
// @host            localhost:8123
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting Fractional Quest agent", "addr", cfg.Addr(), "google_api_key_set", cfg.GoogleAPIKey != "")

	// 3. Setup Repositories
	// TODO: replace with a durable store keyed by user identity once profile persistence lands
	sessionRepo := memory.NewSessionRepository()

	// 4. Setup UseCases
	validate := usecase.NewValidator()
	onboardingUC := usecase.NewOnboardingUsecase(sessionRepo, validate)
	healthUC := usecase.NewHealthUsecase(cfg.AgentName, cfg.GoogleAPIKey)

	// 5. Setup MCP tools
	var mcpHandler http.Handler
	if cfg.MCPEnabled {
		mcpSrv := mcptools.NewServer(mcptools.Deps{
			OnboardingUC: onboardingUC,
			Name:         cfg.AgentName,
			Version:      version,
		})
		mcpHandler = server.NewStreamableHTTPServer(mcpSrv)
		logger.Log.Info("Registering MCP endpoint at /mcp")
	}

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		OnboardingUC: onboardingUC,
		HealthUC:     healthUC,
		MCPHandler:   mcpHandler,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
