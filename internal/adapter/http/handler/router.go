package handler

import (
	"lightning-voucher-service/internal/adapter/http/middleware"
	redisStore "lightning-voucher-service/internal/adapter/storage/redis"
	"lightning-voucher-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	VoucherSvc     ports.VoucherService
	RedemptionSvc  ports.RedemptionService
	ListingSvc     ports.ListingService
	ReissueSvc     ports.ReissueService
	StatusSvc      ports.StatusService
	PayoutFailures ports.PayoutFailureRepository
	Backend        ports.PaymentBackend
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
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
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	redeemHandler := NewRedeemHandler(deps.RedemptionSvc)
	statusHandler := NewStatusHandler(deps.StatusSvc)
	voucherHandler := NewVoucherHandler(deps.VoucherSvc, deps.ListingSvc, deps.ReissueSvc, deps.PayoutFailures, deps.Backend)

	// --- LNURL-withdraw protocol endpoints (public, wallet-facing) ---
	lnurl := r.Group("/voucher/lnurl")
	{
		lnurl.GET("/:id/:sats", rl("lnurl"), redeemHandler.LnurlWithdraw)
		lnurl.GET("/:id/:sats/cb", rl("lnurl"), redeemHandler.LnurlCallback)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (claimant-facing) ---
	v1.POST("/redeem", rl("redeem"), redeemHandler.Redeem)
	v1.GET("/vouchers/:id/status", rl("status"), statusHandler.GetStatus)
	v1.GET("/vouchers/:id/await", rl("status"), statusHandler.Await)

	// --- JWT-authenticated routes (issuer API) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	vouchers := v1.Group("/vouchers", jwtAuth)
	{
		vouchers.POST("", rl("vouchers"), voucherHandler.Create)
		vouchers.GET("", rl("vouchers"), voucherHandler.List)
		vouchers.GET("/:id", rl("vouchers"), voucherHandler.Get)
		vouchers.POST("/:id/cancel", rl("vouchers"), voucherHandler.Cancel)
		vouchers.POST("/:id/reissue", rl("vouchers"), voucherHandler.Reissue)
	}

	issuer := v1.Group("", jwtAuth)
	{
		issuer.GET("/payout-failures", rl("vouchers"), voucherHandler.ListPayoutFailures)
		issuer.GET("/wallet/balance", rl("vouchers"), voucherHandler.GetWalletBalance)
	}

	return r
}
