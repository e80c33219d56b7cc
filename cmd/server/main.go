package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/jaki95/lineup-genre-sorter/config"
	"github.com/jaki95/lineup-genre-sorter/internal/server"
	"github.com/jaki95/lineup-genre-sorter/internal/service"
	"github.com/jaki95/lineup-genre-sorter/internal/storage"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "Path to the configuration file")
	port := flag.String("port", "", "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if cfg.LogLevel > int(slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := service.LoadDirectory(ctx, cfg)
	if err != nil {
		slog.Error("Failed to load artist directory", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to create storage", "type", cfg.Storage.Type, "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, service.NewProcessor(cfg, dir), store)

	slog.Info("Starting lineup genre sorter API server", "port", cfg.Server.Port, "artists", dir.Len())
	if err := srv.Start(ctx, cfg.Server.Port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
