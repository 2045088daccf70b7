package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/logo-compositor/internal/config"
	"github.com/phambaophuc/logo-compositor/internal/http/handlers"
	"github.com/phambaophuc/logo-compositor/internal/http/routes"
	"github.com/phambaophuc/logo-compositor/internal/services/combiner"
	"github.com/phambaophuc/logo-compositor/internal/services/placement"
	"github.com/phambaophuc/logo-compositor/internal/services/processor"
	"github.com/phambaophuc/logo-compositor/internal/services/queue"
	"github.com/phambaophuc/logo-compositor/internal/services/storage"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize services
	calc := placement.NewCalculator(cfg.Compose.PlacementDefaults())
	imageProcessor := processor.NewImageProcessor(cfg.Fetch.MaxFileSize)

	store, err := storage.NewStorageService(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage service", zap.Error(err))
	}
	defer store.Close()

	opts := []combiner.Option{
		combiner.WithFetcher(combiner.HTTPFetcher(cfg.Fetch.MaxFileSize, cfg.Fetch.Timeout)),
	}
	if store.CacheEnabled() {
		opts = append(opts, combiner.WithCache(store))
	} else {
		logger.Warn("Redis not configured, results will not be cached")
	}
	if store.UploadEnabled() {
		opts = append(opts, combiner.WithUploader(store))
	}
	combineService := combiner.NewService(calc, imageProcessor, logger, opts...)

	var jobQueue handlers.JobQueue
	if cfg.RabbitMQ.URL != "" {
		var jobs queue.JobStore
		if store.CacheEnabled() {
			jobs = store
		}

		q, err := queue.NewQueueService(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, combineService, jobs, logger)
		if err != nil {
			// Continue without queue service for basic functionality
			logger.Warn("Failed to initialize queue service", zap.Error(err))
		} else {
			defer q.Close()
			for i := 1; i <= cfg.RabbitMQ.Workers; i++ {
				if err := q.StartWorker(ctx, i); err != nil {
					logger.Error("Failed to start worker", zap.Int("worker_id", i), zap.Error(err))
				}
			}
			jobQueue = q
		}
	}

	// Initialize handlers
	combineHandler := handlers.NewCombineHandler(combineService, store, jobQueue, logger)

	router := routes.NewRouter(combineHandler, logger, cfg.Compose.MaxBodySize)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.SetupRoutes(),
	}

	// Start server
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
