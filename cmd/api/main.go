package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/adapter/artifact"
	"lightning-voucher-service/internal/adapter/document"
	httpHandler "lightning-voucher-service/internal/adapter/http/handler"
	pgStorage "lightning-voucher-service/internal/adapter/storage/postgres"
	redisStorage "lightning-voucher-service/internal/adapter/storage/redis"
	"lightning-voucher-service/internal/adapter/wallet"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/internal/service"
	"lightning-voucher-service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Lightning Voucher Service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	voucherRepo := pgStorage.NewVoucherRepo(pool)
	failureRepo := pgStorage.NewPayoutFailureRepo(pool)

	// Initialize outbound adapters
	backend := wallet.NewClient(cfg.Wallet, log)
	docs := document.NewClient(cfg.Document, log)
	renderer := artifact.NewQRRenderer()
	notifier := redisStorage.NewClaimNotifier(rdb)

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	voucherSvc := service.NewVoucherService(voucherRepo, renderer, cfg.Lnurl, log)
	redemptionSvc := service.NewRedemptionService(voucherRepo, failureRepo, backend, notifier, cfg.Lnurl, log)
	listingSvc := service.NewListingService(voucherRepo, log)
	reissueSvc := service.NewReissueService(voucherRepo, renderer, docs, cfg.Lnurl, log)
	statusSvc := service.NewStatusService(voucherRepo, notifier, log)

	// Initialize rate limit store
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VoucherSvc:     voucherSvc,
		RedemptionSvc:  redemptionSvc,
		ListingSvc:     listingSvc,
		ReissueSvc:     reissueSvc,
		StatusSvc:      statusSvc,
		PayoutFailures: failureRepo,
		Backend:        backend,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
