package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "herramarket-frontdesk/internal/api/http"
	"herramarket-frontdesk/internal/cache"
	"herramarket-frontdesk/internal/cart"
	"herramarket-frontdesk/internal/config"
	"herramarket-frontdesk/internal/domain"
	"herramarket-frontdesk/internal/jobs"
	"herramarket-frontdesk/internal/logger"
	"herramarket-frontdesk/internal/resolver"
	"herramarket-frontdesk/internal/scheduler"
	"herramarket-frontdesk/internal/security"
	"herramarket-frontdesk/internal/service"
	"herramarket-frontdesk/internal/upstream"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Herramarket front desk...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Upstream configuration", "base_url", cfg.Upstream.BaseURL, "timeout_seconds", cfg.Upstream.TimeoutSeconds)

	// Initialize Security
	verifier := security.NewTokenVerifier(cfg.JWT.Secret)

	// Initialize Upstream backend client
	backend := upstream.New(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)

	// Initialize Resolver caches
	reservationCache := cache.New[*domain.Reservation](
		cfg.Resolver.CacheCapacity,
		time.Duration(cfg.Resolver.CacheTTLMinutes)*time.Minute,
	)
	clientNameCache := cache.New[string](
		cfg.Resolver.ClientCacheCapacity,
		time.Duration(cfg.Resolver.ClientCacheTTLMinutes)*time.Minute,
	)
	paymentResolver := resolver.New(backend, reservationCache, clientNameCache, cfg.Resolver.Workers)

	// Initialize Services
	carts := cart.NewStore()
	reservationSvc := service.NewReservationService(backend)
	returnSvc := service.NewReturnService(backend)
	paymentSvc := service.NewPaymentService(paymentResolver)

	// Initialize HTTP API
	router := httpapi.NewRouter(verifier, httpapi.Handlers{
		Cart:        httpapi.NewCartHandler(carts, backend),
		Reservation: httpapi.NewReservationHandler(reservationSvc, carts),
		Return:      httpapi.NewReturnHandler(returnSvc),
		Payment:     httpapi.NewPaymentHandler(paymentSvc),
	})

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(reservationCache, clientNameCache, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
