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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/sharath018/event-management-backend/database"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/internal/migrations"
	"github.com/sharath018/event-management-backend/internal/notification"
	"github.com/sharath018/event-management-backend/routes"
	"github.com/sharath018/event-management-backend/utils"
)

var (
	serverPort  string
	skipMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server.

The server will:
- Load configuration from .env and environment variables
- Migrate the schema (unless --skip-migrate)
- Connect Redis and Kafka when configured
- Handle graceful shutdown on SIGINT/SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "listen port (default: PORT or 8080)")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on startup")
}

func runServer() error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	gin.SetMode(cfg.GinMode)

	metrics.Init(Version)

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if !skipMigrate {
		if err := migrations.Run(db); err != nil {
			return err
		}
	}

	ctx := context.Background()
	rdb, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// the limiter falls back to process memory
		logger.Warn().Err(err).Msg("⚠️ Redis unavailable, continuing without it")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	publisher := notification.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	router, err := routes.NewRouter(routes.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Publisher: publisher,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("🚀 server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}
	return nil
}
