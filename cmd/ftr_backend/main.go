package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/adapters/database/memory"
	"github.com/fintrackr/finance_tracker_app/internal/adapters/database/mongodb"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/core/services"
	"github.com/fintrackr/finance_tracker_app/internal/handlers"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
	"github.com/fintrackr/finance_tracker_app/pkg/config"
	"github.com/fintrackr/finance_tracker_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Fintrackr Backend API
// @version 1.0
// @description REST backend for the Fintrackr personal finance dashboard.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize the transaction store before the server accepts requests;
	// the handle is injected into the service layer, never read as a global.
	var transactionRepo portsrepo.TransactionRepository
	switch cfg.StoreBackend {
	case "memory":
		transactionRepo = memory.NewMemoryTransactionRepository()
		logger.Info("Initialized in-memory transaction store")
	default:
		mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			logger.Error("Failed to initialize mongo client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.CloseMongoClient(context.Background(), mongoClient)

		mongoRepo := mongodb.NewMongoTransactionRepository(mongoClient.Database(cfg.MongoDBName))
		if err := mongoRepo.EnsureIndexes(ctx); err != nil {
			logger.Error("Failed to ensure transaction indexes", slog.String("error", err.Error()))
			os.Exit(1)
		}
		transactionRepo = mongoRepo
		logger.Info("Initialized mongo transaction store", slog.String("database", cfg.MongoDBName))
	}

	txnService := services.NewTransactionService(transactionRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{Transaction: txnService})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: finish in-flight requests, then release the store.
	shutdownDone := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
		close(shutdownDone)
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}

	<-shutdownDone
}
