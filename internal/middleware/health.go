package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var startTime = time.Now()

// HealthCheckHandler reports liveness and uptime.
func HealthCheckHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthStatus{
			Status:      "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(startTime).String(),
			Version:     version,
		})
	}
}
