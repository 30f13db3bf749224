package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler reports liveness of the API and its backing services.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Check)
}

// Check pings the database and cache and reports per-dependency status.
// The endpoint stays 200 as long as the process is serving; degraded
// dependencies are reported in the body.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	services := gin.H{}

	if h.db != nil {
		services["database"] = "up"
		if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			services["database"] = "down"
			status = "degraded"
		}
	}

	if h.redis != nil {
		services["cache"] = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			services["cache"] = "down"
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    status,
		"services":  services,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
