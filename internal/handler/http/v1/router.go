package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/count", h.countIncidents)
		incidents.GET("/high-severity", h.listHighSeverity)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/recommendations", h.addRecommendation)
		incidents.PUT("/:id/status", h.setStatus)
		incidents.POST("/:id/resource-request", h.raiseResourceRequest)
		incidents.PUT("/:id/enrichment", h.enrichIncident)
	}

	// Поток обработки отчётов фермеров
	api.POST("/reports", h.submitReport)

	api.GET("/lgas/:lga/summary", h.summarizeLGA)
	api.GET("/stats", h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
