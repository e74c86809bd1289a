package api

import (
	"net/http"

	summaryDelivery "aimeet-backend/internal/summary/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, summaryHandler *summaryDelivery.SummaryHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Summary pipeline routes
		api.POST("/summarize", summaryHandler.Summarize)
		api.POST("/send-email", summaryHandler.Distribute)
		api.GET("/history", summaryHandler.History)
	}
}
