package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"fundraising.backend/internal/interfaces/http/handlers"
	"fundraising.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	founderHandler    *handlers.FounderHandler
	investorHandler   *handlers.InvestorHandler
	adminHandler      *handlers.AdminHandler
	projectHandler    *handlers.ProjectHandler
	investmentHandler *handlers.InvestmentHandler
	updateHandler     *handlers.UpdateHandler
	authMiddleware    gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth (public)
	r.POST("/token", d.authHandler.Token)
	r.POST("/signin", d.authHandler.SignIn)

	// Founder accounts
	founders := r.Group("/founders")
	{
		founders.POST("", d.founderHandler.Create)
		founders.GET("", d.founderHandler.List)
		founders.GET("/:id", d.founderHandler.Get)
		founders.PUT("/:id", d.founderHandler.Update)
		founders.DELETE("/:id", d.founderHandler.Delete)
	}

	// Investor accounts
	investors := r.Group("/investors")
	{
		investors.POST("", d.investorHandler.Create)
		investors.GET("", d.investorHandler.List)
		investors.GET("/:id", d.investorHandler.Get)
		investors.PUT("/:id", d.investorHandler.Update)
		investors.DELETE("/:id", d.investorHandler.Delete)
	}

	// Admin accounts (creation is guarded by the shared secret, not a
	// bearer token)
	admin := r.Group("/admins")
	{
		admin.POST("", d.adminHandler.Create)
		admin.GET("", d.adminHandler.List)
		admin.GET("/:id", d.adminHandler.Get)
		admin.PUT("/:id", d.adminHandler.Update)
		admin.DELETE("/:id", d.adminHandler.Delete)
	}

	// Campaigns (creation requires a founder token)
	campaigns := r.Group("/campaigns")
	{
		campaigns.POST("", d.authMiddleware, middleware.RequireFounder(), d.projectHandler.Create)
		campaigns.GET("", d.projectHandler.List)
		campaigns.GET("/:id", d.projectHandler.Get)
		campaigns.GET("/:id/pdf", d.projectHandler.Document)
		campaigns.PUT("/:id", d.projectHandler.Update)
		campaigns.DELETE("/:id", d.projectHandler.Delete)
	}

	// Investments (creation requires an investor token)
	investments := r.Group("/investments")
	{
		investments.POST("", d.authMiddleware, middleware.RequireInvestor(), d.investmentHandler.Create)
		investments.GET("", d.investmentHandler.List)
		investments.GET("/:id", d.investmentHandler.Get)
		investments.PUT("/:id", d.authMiddleware, d.investmentHandler.Update)
		investments.DELETE("/:id", d.authMiddleware, d.investmentHandler.Delete)
	}
	r.GET("/investor/investments", d.authMiddleware, middleware.RequireInvestor(), d.investmentHandler.ListOwn)

	// Campaign updates (writes require the owning founder's token)
	updates := r.Group("/updates")
	{
		updates.POST("", d.authMiddleware, middleware.RequireFounder(), d.updateHandler.Create)
		updates.GET("", d.updateHandler.List)
		updates.GET("/:id", d.updateHandler.Get)
		updates.PUT("/:id", d.authMiddleware, middleware.RequireFounder(), d.updateHandler.Edit)
		updates.DELETE("/:id", d.authMiddleware, middleware.RequireFounder(), d.updateHandler.Delete)
	}
	r.GET("/project/:id/updates", d.authMiddleware, middleware.RequireInvestor(), d.updateHandler.ListForProject)
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "fundraising-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
