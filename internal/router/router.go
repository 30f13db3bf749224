package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/config"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/api"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/middleware"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/service"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// Setup builds the gin engine with all middleware and routes registered.
// redisClient and s3 may be nil; the affected features degrade gracefully
// (no rate limiting, no popular-recipe cache, image uploads disabled).
func Setup(db *gorm.DB, redisClient *redis.Client, s3 *config.S3Config, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	if redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    cfg.RateLimitWindow,
			Limit:     cfg.RateLimitRequests,
			KeyPrefix: "ratelimit:api",
		})
		engine.Use(limiter.Middleware())
	}

	repo := store.New(db)
	recipeService := service.NewRecipeService(repo, repo, redisClient, logger)
	userService := service.NewUserService(repo, repo, logger)

	var imageService service.IImageService
	if s3 != nil {
		imageService = service.NewImageService(s3.Client, s3.BucketName, repo, logger)
	}

	api.NewHealthHandler(db, redisClient).RegisterRoutes(engine)

	v1 := engine.Group("/api/v1")
	api.NewRecipeHandler(recipeService, imageService, logger).RegisterRoutes(v1)
	api.NewUserHandler(userService, logger).RegisterRoutes(v1)
	api.NewIngredientHandler(logger).RegisterRoutes(v1)

	return engine
}
