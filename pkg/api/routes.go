package api

import (
	"github.com/gin-gonic/gin"

	"onboarding-backend/pkg/middleware"
	"onboarding-backend/pkg/services"
)

// RegisterRoutes wires the public and dashboard endpoints onto the
// router. Dashboard reads sit behind the session token gate.
func RegisterRoutes(router *gin.Engine, h *Handlers, sessions services.SessionStore) {
	router.GET("/api/health", h.HealthCheck)
	router.POST("/api/submit", h.HandleSubmit)
	router.POST("/api/dashboard/login", h.HandleLogin)
	router.POST("/api/dashboard/logout", h.HandleLogout)

	protected := router.Group("/api", middleware.DashboardAuth(sessions))
	protected.GET("/clients", h.HandleListClients)
	protected.GET("/clients/:name/details", h.HandleClientDetails)
}
