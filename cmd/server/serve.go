package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/HammerMeetNail/syncin/internal/config"
	"github.com/HammerMeetNail/syncin/internal/database"
	"github.com/HammerMeetNail/syncin/internal/logging"
	"github.com/HammerMeetNail/syncin/internal/middleware"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start the HTTP API. PostgreSQL (DATABASE_URL) and Redis (REDIS_HOST) are optional; when either is missing or unreachable the server runs without it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return run(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8000, "Port to listen on (overrides PORT)")
	return cmd
}

func run(cfg *config.Config) error {
	logger := logging.New()

	level, ok := logging.ParseLevel(cfg.Server.LogLevel)
	logger.SetLevel(level)
	logging.SetDefaultLevel(level)
	if !ok {
		logger.Warn("Unknown LOG_LEVEL; using info", map[string]interface{}{"value": cfg.Server.LogLevel})
	}

	logger.Info("Starting sync.in server...", map[string]interface{}{
		"env": cfg.Server.Environment,
	})

	// Both backends are optional and may each spend seconds timing out, so
	// dial them together.
	var (
		db      *database.PostgresDB
		redisDB *database.RedisDB
		g       errgroup.Group
	)
	g.Go(func() error {
		db = connectPostgres(cfg.Database, logger)
		return nil
	})
	g.Go(func() error {
		redisDB = connectRedis(cfg.Redis, logger)
		return nil
	})
	_ = g.Wait()

	if db != nil {
		defer db.Close()
	}
	if redisDB != nil {
		defer func() { _ = redisDB.Close() }()
	}

	handler := newRouter(serverDeps{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		redis:   redisDB,
		metrics: middleware.NewMetrics(),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}

// connectPostgres returns nil when the database is not configured or cannot
// be reached; /test then reports it as missing or failing.
func connectPostgres(cfg config.DatabaseConfig, logger *logging.Logger) *database.PostgresDB {
	if !cfg.Enabled() {
		logger.Info("DATABASE_URL not set; running without PostgreSQL")
		return nil
	}

	logger.Info("Connecting to PostgreSQL")
	db, err := database.NewPostgresDB(cfg.URL, cfg.Name)
	if err != nil {
		logger.Warn("PostgreSQL unavailable; continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	logger.Info("Connected to PostgreSQL", map[string]interface{}{"database": db.Name()})
	return db
}

// connectRedis returns nil when Redis is not configured or cannot be
// reached, which disables rate limiting.
func connectRedis(cfg config.RedisConfig, logger *logging.Logger) *database.RedisDB {
	if !cfg.Enabled() {
		logger.Info("REDIS_HOST not set; rate limiting disabled")
		return nil
	}

	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Addr(), cfg.Password, cfg.DB)
	if err != nil {
		logger.Warn("Redis unavailable; rate limiting disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	logger.Info("Connected to Redis")
	return redisDB
}
