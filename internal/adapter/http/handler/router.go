package handler

import (
	"revenue-recovery/internal/adapter/http/middleware"
	redisStore "revenue-recovery/internal/adapter/storage/redis"
	"revenue-recovery/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Verifier        ports.WebhookVerifier
	IngestSvc       ports.IngestService
	SchedulerSvc    ports.SchedulerService
	CaseEngine      ports.CaseEngine
	CaseRepo        ports.CaseRepository
	ActionRepo      ports.ActionRepository
	TokenSvc        ports.TokenService
	CronSecret      string
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimitStrict bool                       // true = fail closed when redis is down
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.RateLimitStrict, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Webhook ingestion (HMAC-verified inside the handler) ---
	webhookHandler := NewWebhookHandler(deps.Verifier, deps.IngestSvc, deps.Logger)
	v1.POST("/webhooks/billing", rl("webhooks"), webhookHandler.Receive)

	// --- Scheduler trigger (cron secret or operator JWT) ---
	schedulerHandler := NewSchedulerHandler(deps.SchedulerSvc)
	cronAuth := middleware.CronAuth(deps.CronSecret, deps.TokenSvc, deps.Logger)
	scheduler := v1.Group("/scheduler", cronAuth)
	{
		scheduler.GET("", rl("scheduler"), schedulerHandler.Status)
		scheduler.POST("", rl("scheduler"), schedulerHandler.Trigger)
	}

	// --- Operator routes (JWT) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	caseHandler := NewCaseHandler(deps.CaseEngine, deps.CaseRepo)
	dashboardHandler := NewDashboardHandler(deps.CaseRepo, deps.ActionRepo)

	cases := v1.Group("/cases", jwtAuth)
	{
		cases.GET("", rl("cases"), dashboardHandler.ListCases)
		cases.GET("/:id", rl("cases"), dashboardHandler.GetCase)
		cases.GET("/:id/actions", rl("cases"), dashboardHandler.ListActions)
		cases.POST("/:id/nudge", rl("cases"), caseHandler.Nudge)
		cases.POST("/:id/cancel", rl("cases"), caseHandler.Cancel)
		cases.POST("/:id/cancel-at-period-end", rl("cases"), caseHandler.CancelAtPeriodEnd)
		cases.POST("/:id/terminate", rl("cases"), caseHandler.Terminate)
	}

	dashboard := v1.Group("/dashboard", jwtAuth)
	{
		dashboard.GET("/stats", rl("dashboard"), dashboardHandler.GetStats)
	}

	return r
}
