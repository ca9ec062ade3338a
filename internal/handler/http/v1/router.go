package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	protected.GET("/budget", h.getBudget)

	// Маршруты сессии дашборда
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.PUT("/:id/tab", h.setTab)

		sessions.POST("/:id/incidents", h.reportIncident)
		sessions.GET("/:id/incidents", h.listReports)
		sessions.GET("/:id/map", h.getMap)

		sessions.POST("/:id/spatial", h.analyzeSpatial)
		sessions.GET("/:id/spatial", h.getFinding)

		sessions.POST("/:id/chat", h.askBudget)
		sessions.GET("/:id/chat", h.getTranscript)

		sessions.GET("/:id/budget", h.getBudgetView)
		sessions.POST("/:id/budget/filter", h.toggleBudgetFilter)
	}
}
