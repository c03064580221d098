package handlers

import (
	"net/http"
	"time"

	"caregrid/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and dependency status.
func HealthHandler(c *gin.Context) {
	health := utils.GetHealthStatus()

	database := "disconnected"
	if health.Mongo {
		database = "connected"
	}

	cache := "disconnected"
	for _, ok := range health.Redis {
		if ok {
			cache = "connected"
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"service":   "patient-scheduling-service",
		"message":   "Patient scheduling service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"dependencies": gin.H{
			"database": database,
			"cache":    cache,
		},
	})
}
