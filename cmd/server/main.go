package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/palemoky/name-chemi/internal/api/rest"
	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/config"
	"github.com/palemoky/name-chemi/internal/content"
	"github.com/palemoky/name-chemi/internal/database"
	"github.com/palemoky/name-chemi/internal/logger"
	"github.com/palemoky/name-chemi/internal/recent"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          "server",
		Short:        "Name Chemi API server",
		Long:         "Serve name compatibility readings, weekly forecasts and recent search history over HTTP",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, cfgErr := config.Load(configPath)
	if cfgErr != nil {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return err
		}
	}

	// Initialize logger
	logger.Init(logger.Options{
		Debug: cfg.Server.Mode != "release",
		Level: cfg.Log.Level,
	})
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("Failed to load config file, using defaults",
			zap.String("path", configPath),
			zap.Error(cfgErr),
		)
	}

	loc, err := cfg.Chemi.Location()
	if err != nil {
		return err
	}

	// Content pools are validated once; a broken table must stop startup
	pools, err := content.Open(cfg.Chemi.ContentFile)
	if err != nil {
		logger.Fatal("Failed to load content pools",
			zap.String("file", cfg.Chemi.ContentFile),
			zap.Error(err),
		)
	}

	engine := chemi.NewEngine(pools, chemi.WithLocation(loc))

	logger.Info("Starting Name Chemi API server",
		zap.Int("port", cfg.Server.Port),
		zap.String("timezone", loc.String()),
		zap.String("today", chemi.DateKey(engine.Today())),
		zap.Bool("recent_enabled", cfg.Recent.Enabled),
	)

	var (
		db    *database.DB
		store *recent.Store
	)
	if cfg.Recent.Enabled {
		db, err = database.Open(cfg.Database.Path, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			logger.Fatal("Failed to open database", zap.String("path", cfg.Database.Path), zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}

		repo := database.NewCachedRepository(database.NewRepository(db))
		store = recent.NewStore(repo, cfg.Recent.Limit)
	}

	// Setup Gin router
	router := rest.SetupRouter(cfg, db, engine, store)

	// Create HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server started",
			zap.Int("port", cfg.Server.Port),
			zap.String("rest_api", fmt.Sprintf("http://localhost:%d/api/v1", cfg.Server.Port)),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
	return nil
}
