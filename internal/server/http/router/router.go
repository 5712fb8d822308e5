package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mkaryagin/heartbeat/internal/server/http/handlers"
	"github.com/mkaryagin/heartbeat/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.HeartbeatFacade, health *handlers.HealthHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	coupleHandler := handlers.NewCoupleHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	rewardHandler := handlers.NewRewardHandler(facade)
	redemptionHandler := handlers.NewRedemptionHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.GET("/health", health.Status)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	authed.GET("/couple", coupleHandler.Own)
	authed.GET("/couples/:id", coupleHandler.ByID)

	authed.POST("/points/adjust", pointsHandler.Adjust)
	authed.GET("/points/balance", pointsHandler.Balance)
	authed.GET("/points/history", pointsHandler.History)

	authed.POST("/rewards", rewardHandler.Create)
	authed.GET("/rewards", rewardHandler.List)
	authed.GET("/rewards/base", rewardHandler.Base)
	authed.PATCH("/rewards/:id", rewardHandler.Update)
	authed.DELETE("/rewards/:id", rewardHandler.Delete)

	authed.POST("/redemptions", redemptionHandler.Redeem)
	authed.GET("/redemptions", redemptionHandler.History)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/couples", adminHandler.Couples)
	admin.GET("/redemptions", adminHandler.Redemptions)
	admin.GET("/stats", adminHandler.Stats)

	return engine
}
