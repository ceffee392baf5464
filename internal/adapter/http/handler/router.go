package handler

import (
	"token-recovery-dapp/internal/adapter/http/middleware"
	redisStore "token-recovery-dapp/internal/adapter/storage/redis"
	"token-recovery-dapp/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	DappSvc        ports.DappService
	NoticeSvc      ports.NoticeService
	DefaultWallet  string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Mode           string // gin mode, defaults to release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", OpenAPISpec)
	}

	rules := middleware.DefaultRateLimitRules()
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

	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.DefaultWallet)
	wallet := v1.Group("/wallet")
	{
		wallet.GET("", rl("reads"), walletHandler.GetSession)
		wallet.POST("/connect", rl("wallet"), walletHandler.Connect)
		wallet.POST("/disconnect", rl("wallet"), walletHandler.Disconnect)
	}

	dappHandler := NewDappHandler(deps.DappSvc)
	v1.GET("/account", rl("reads"), dappHandler.GetAccount)
	v1.GET("/network", rl("reads"), dappHandler.GetNetwork)
	v1.POST("/transfers", rl("transactions"), dappHandler.Transfer)

	recovery := v1.Group("/recovery")
	{
		recovery.POST("/initialize", rl("transactions"), dappHandler.InitializeRecovery)
		recovery.POST("/requests", rl("transactions"), dappHandler.RequestRecovery)
	}

	messages := v1.Group("/messages")
	{
		messages.GET("", rl("reads"), dappHandler.GetMessage)
		messages.POST("", rl("transactions"), dappHandler.WriteMessage)
	}

	noticeHandler := NewNoticeHandler(deps.NoticeSvc)
	notices := v1.Group("/notices")
	{
		notices.GET("", rl("reads"), noticeHandler.List)
		notices.DELETE("/:id", rl("reads"), noticeHandler.Dismiss)
	}

	return r
}
