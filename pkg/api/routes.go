package api

import (
	"github.com/gin-gonic/gin"

	"content-gateway/pkg/config"
	"content-gateway/pkg/middleware"
)

// NewRouter builds the gin engine with middleware and all routes registered
func NewRouter(cfg *config.Config, handlers *Handlers) *gin.Engine {
	// Create a new Gin router with default middleware
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	handlers.RegisterRoutes(router, middleware.RequireAdmin(cfg.SupabaseJWTSecret))

	return router
}

// RegisterRoutes adds the public and admin routes to r
func (h *Handlers) RegisterRoutes(r gin.IRouter, adminAuth gin.HandlerFunc) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	api.GET("/content", h.GetContent)
	api.POST("/contact", h.SubmitLead)

	admin := api.Group("", adminAuth)
	admin.PUT("/content", h.UpdateContent)
	admin.GET("/leads", h.ListLeads)
}
