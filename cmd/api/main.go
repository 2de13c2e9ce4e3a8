package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loja-api/internal/auth"
	"loja-api/internal/config"
	"loja-api/internal/database"
	"loja-api/internal/handler"
	"loja-api/internal/repository"
	"loja-api/internal/router"
	"loja-api/internal/service"
	"loja-api/internal/storage"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting loja API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return err
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	images, err := newImageStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTKey, auth.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize services
	productService := service.NewProductService(productRepo, images, cfg.Upload.MaxBytes, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, logger)
	userService := service.NewUserService(userRepo, hasher, tokens, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Products: handler.NewProductHandler(productService, cfg.Server.PublicBaseURL, cfg.Upload.MaxBytes, logger),
		Orders:   handler.NewOrderHandler(orderService, cfg.Server.PublicBaseURL, logger),
		Users:    handler.NewUserHandler(userService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, router.Options{
		UploadDir: cfg.Upload.Dir,
		Health:    pool,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("public_url", cfg.Server.PublicBaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newImageStore returns the local upload directory store, fronted by S3 when enabled.
func newImageStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (storage.ImageStore, error) {
	fileStore, err := storage.NewFileStore(cfg.Upload.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload directory: %w", err)
	}

	if !cfg.S3.Enabled {
		logger.Info().Str("dir", cfg.Upload.Dir).Msg("using local file system for product images (S3 disabled)")
		return fileStore, nil
	}

	s3Store, err := storage.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 image store, falling back to local file system only")
		return fileStore, nil
	}

	return storage.NewFallbackStore(s3Store, fileStore, logger), nil
}
