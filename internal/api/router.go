package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridelog/faff-backend-go/internal/config"
	"github.com/ridelog/faff-backend-go/internal/handler"
	"github.com/ridelog/faff-backend-go/internal/middleware"
	"github.com/ridelog/faff-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS: the map frontend is served separately.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	analysisHandler := handler.NewAnalysisHandler(service.NewAnalysisService(), cfg)
	uploadLimiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Faff Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/buckets", analysisHandler.ListBuckets)

		activities := api.Group("/activities")
		{
			activities.POST("/analyze", uploadLimiter.Middleware(), analysisHandler.Analyze)
		}
	}

	return r
}
