package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockbook/internal/config"
	"stockbook/internal/database"
	"stockbook/internal/flash"
	"stockbook/internal/handler"
	"stockbook/internal/repository"
	"stockbook/internal/router"
	"stockbook/internal/service"
	"stockbook/internal/view"
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
	logger.Info().Msg("starting stockbook web server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool and schema
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.InitSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	clientRepo := repository.NewClientRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	expenseRepo := repository.NewExpenseRepository(pool, logger)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	clientService := service.NewClientService(clientRepo, logger)
	orderService := service.NewOrderService(orderRepo, clientRepo, productRepo, logger)
	expenseService := service.NewExpenseService(expenseRepo, logger)
	reportService := service.NewReportService(productRepo, clientRepo, orderRepo, expenseRepo, logger)

	// Initialize view renderer and flash store
	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize view renderer: %w", err)
	}
	flashes := flash.NewStore(cfg.Session.Secret)

	// Initialize HTTP handlers
	reportHandler := handler.NewReportHandler(reportService, renderer, flashes, logger)
	productHandler := handler.NewProductHandler(productService, renderer, flashes, logger)
	clientHandler := handler.NewClientHandler(clientService, renderer, flashes, logger)
	orderHandler := handler.NewOrderHandler(orderService, renderer, flashes, logger)
	expenseHandler := handler.NewExpenseHandler(expenseService, renderer, flashes, logger)

	// Initialize router
	mux := router.New(reportHandler, productHandler, clientHandler, orderHandler, expenseHandler, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
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
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
