package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"revenue-recovery/config"
	"revenue-recovery/internal/adapter/billing"
	httpHandler "revenue-recovery/internal/adapter/http/handler"
	"revenue-recovery/internal/adapter/notify"
	pgStorage "revenue-recovery/internal/adapter/storage/postgres"
	redisStorage "revenue-recovery/internal/adapter/storage/redis"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"
	"revenue-recovery/internal/service"
	"revenue-recovery/pkg/logger"

	"github.com/rs/zerolog"
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
		Msg("Starting Revenue Recovery Service")

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
	eventRepo := pgStorage.NewEventRepo(pool)
	caseRepo := pgStorage.NewCaseRepo(pool)
	actionRepo := pgStorage.NewActionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Company settings sit behind a short-lived Redis cache; the
	// scheduler reads them once per company per cycle.
	settingsRepo := redisStorage.NewSettingsCache(rdb, pgStorage.NewSettingsRepo(pool), 5*time.Minute, log)

	// Initialize Redis stores
	companyLock := redisStorage.NewCompanyLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Resilience clients for outbound dependencies. The breaker wraps
	// the retries, so an open breaker fails fast without retrying.
	billingExec := newResilienceClient("billing", cfg.Resilience, log)
	pushExec := newResilienceClient("push_provider", cfg.Resilience, log)
	dmExec := newResilienceClient("dm_provider", cfg.Resilience, log)

	// Outbound adapters
	billingClient := billing.NewClient(cfg.Billing, &http.Client{Timeout: cfg.Billing.Timeout}, log)
	notifyHTTP := &http.Client{Timeout: cfg.Notify.Timeout}
	pushSender := notify.NewPushSender(cfg.Notify.PushURL, cfg.Notify.APIKey, notifyHTTP, log)
	dmSender := notify.NewDMSender(cfg.Notify.DMURL, cfg.Notify.APIKey, notifyHTTP, log)
	notifier := notify.NewGateway(pushSender, dmSender, pushExec, dmExec, cfg.Recovery, log)

	// Initialize core services
	verifySvc := service.NewVerifyService(cfg.Webhook, cfg.Server.IsProduction(), log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	caseEngine := service.NewCaseService(
		caseRepo,
		actionRepo,
		settingsRepo,
		billingClient,
		billingExec,
		notifier,
		transactor,
		cfg.Recovery,
		log,
	)
	ingestSvc := service.NewIngestService(eventRepo, caseEngine, log)
	schedulerSvc := service.NewSchedulerService(
		caseRepo,
		actionRepo,
		settingsRepo,
		caseEngine,
		notifier,
		billingClient,
		billingExec,
		companyLock,
		cfg.Recovery,
		cfg.Scheduler,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Verifier:        verifySvc,
		IngestSvc:       ingestSvc,
		SchedulerSvc:    schedulerSvc,
		CaseEngine:      caseEngine,
		CaseRepo:        caseRepo,
		ActionRepo:      actionRepo,
		TokenSvc:        tokenSvc,
		CronSecret:      cfg.Scheduler.CronSecret,
		RateLimitStore:  rateLimitStore,
		RateLimitStrict: cfg.Server.IsProduction(),
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
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

func newResilienceClient(name string, cfg config.ResilienceConfig, log zerolog.Logger) *resilience.Client {
	breaker := resilience.NewCircuitBreaker(name, resilience.BreakerConfig{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		RecoveryTimeout:  cfg.RecoveryTimeout,
	})
	retry := resilience.RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		Multiplier: cfg.Multiplier,
		MaxDelay:   cfg.MaxDelay,
		Jitter:     true,
	}
	return resilience.NewClient(name, retry, breaker, log)
}
