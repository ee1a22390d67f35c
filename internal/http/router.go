package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"giveaway-radar-backend/internal/config"
	"giveaway-radar-backend/internal/http/middleware"
)

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(cfg *config.Config, events EventSource, store HealthChecker) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "init_data", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	h := NewGiveawayHandler(events)

	v1 := router.Group("/api/v1", middleware.InitData(cfg))
	{
		giveaways := v1.Group("/giveaways")
		{
			giveaways.GET("/recent", h.Recent)
			giveaways.GET("/:chat_id/:message_id", h.Get)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "giveaway-radar-backend",
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Healthy(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
		})
	})

	return router
}
