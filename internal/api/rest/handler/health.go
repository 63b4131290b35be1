package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/name-chemi/internal/chemi"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}

// HealthHandler handles health check requests. A nil db means no storage is configured.
func HealthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.Ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  "database connection failed",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	}
}

// LevelsHandler returns the attraction level catalog and attribute labels.
func LevelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		respondOK(c, gin.H{
			"levels":     chemi.Levels(),
			"attributes": formatAttributeLabels(),
		})
	}
}
