package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/api"
	"github.com/pageza/snapdish/backend/internal/middleware"
)

// SetupRouter configures the application routes. redisClient may be nil, in
// which case the rate limiters are skipped.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	messageHandler *api.MessageHandler,
	redisClient *redis.Client,
	allowedOrigins []string,
	logger *zap.Logger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(allowedOrigins))

	// Health check endpoint
	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		var generateLimit, deliverLimit []gin.HandlerFunc
		if redisClient != nil {
			generateLimit = append(generateLimit,
				middleware.NewGenerationRateLimiter(redisClient).RateLimitMiddleware())
			deliverLimit = append(deliverLimit,
				middleware.NewDeliveryRateLimiter(redisClient).RateLimitMiddleware())
		}

		recipeHandler.RegisterRoutes(v1, generateLimit...)
		messageHandler.RegisterRoutes(v1, deliverLimit...)
	}

	return router
}
