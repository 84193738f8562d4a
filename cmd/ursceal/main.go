// Ursceal server - stores stories, characters, and lorebooks, and streams
// LLM-assisted novel prose over SSE.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amiantos/ursceal/pkg/api"
	"github.com/amiantos/ursceal/pkg/config"
	"github.com/amiantos/ursceal/pkg/database"
	"github.com/amiantos/ursceal/pkg/generation"
	"github.com/amiantos/ursceal/pkg/models"
	"github.com/amiantos/ursceal/pkg/provider"
	"github.com/amiantos/ursceal/pkg/services"
	"github.com/amiantos/ursceal/pkg/version"
)

func main() {
	configPath := flag.String("config", getEnv("URSCEAL_CONFIG", "./ursceal.yaml"), "Path to configuration file")
	flag.Parse()

	slog.Info("Starting ursceal", "version", version.Full())

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Data.Root, 0o755); err != nil {
		slog.Error("Failed to create data root", "error", err, "path", cfg.Data.Root)
		os.Exit(1)
	}

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
	slog.Info("Connected to PostgreSQL, schema up to date")

	historyService := services.NewHistoryService(dbClient.Client)
	storyService := services.NewStoryService(dbClient.Client, historyService)
	characterService := services.NewCharacterService(dbClient.Client)
	lorebookService := services.NewLorebookService(dbClient.Client)
	presetService := services.NewPresetService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)

	orchestrator := generation.NewOrchestrator(
		storyService, characterService, lorebookService,
		presetService, settingsService, historyService,
	)
	orchestrator.SetProviderFactory(providerFactory(cfg))

	server := api.NewServer(
		cfg,
		storyService, characterService, lorebookService,
		presetService, settingsService, historyService,
		orchestrator,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	slog.Info("HTTP server listening", "addr", cfg.Addr())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}

// providerFactory builds providers with the config's horde polling knobs
// applied.
func providerFactory(cfg *config.Config) generation.ProviderFactory {
	return func(tag string, apiCfg models.APIConfig) (provider.Provider, error) {
		prov, err := provider.ForPreset(tag, apiCfg)
		if err != nil {
			return nil, err
		}
		if h, ok := prov.(*provider.Horde); ok {
			h.SetPolling(cfg.Horde.PollInterval.Std(), cfg.Horde.Timeout.Std())
		}
		return prov, nil
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
