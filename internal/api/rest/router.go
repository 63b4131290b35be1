package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/palemoky/name-chemi/internal/api/middleware"
	"github.com/palemoky/name-chemi/internal/api/rest/handler"
	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/config"
	"github.com/palemoky/name-chemi/internal/database"
	"github.com/palemoky/name-chemi/internal/helpers"
	"github.com/palemoky/name-chemi/internal/logger"
	"github.com/palemoky/name-chemi/internal/recent"
)

// SetupRouter sets up the Gin router with all routes.
// db and store may be nil when recent search history is disabled.
func SetupRouter(cfg *config.Config, db *database.DB, engine *chemi.Engine, store *recent.Store) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	// Rate limiting middleware
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(rateLimiter.Middleware())
	}

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}

	rules := helpers.NewNameRules(cfg.Chemi.MinNameLength, cfg.Chemi.MaxNameLength)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", handler.HealthHandler(pinger))

		// Level catalog
		v1.GET("/levels", handler.LevelsHandler())

		// Chemi routes
		var recorder handler.RecentRecorder
		if store != nil {
			recorder = store
		}
		chemiHandler := handler.NewChemiHandler(engine, recorder, rules)
		v1.GET("/chemi", chemiHandler.GetChemi)
		v1.POST("/chemi", chemiHandler.PostChemi)
		v1.GET("/chemi/weekly", chemiHandler.GetWeekly)

		// Recent search routes
		if store != nil {
			recentHandler := handler.NewRecentHandler(store)
			v1.GET("/recent", recentHandler.ListRecent)
			v1.DELETE("/recent", recentHandler.ClearRecent)
		}
	}

	return router
}
