package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/snapdish/backend/internal/service"
	"github.com/pageza/snapdish/backend/internal/types"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	visionService service.IVisionService
	logger        *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(visionService service.IVisionService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		visionService: visionService,
		logger:        logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		handlers := append(extra, h.Generate)
		recipes.POST("/generate", handlers...)
	}
}

// Generate handles a single photo-to-recipes request
func (h *RecipeHandler) Generate(c *gin.Context) {
	requestID := uuid.New().String()

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "imageDataUrl is required"})
		return
	}

	result, err := h.visionService.Generate(c.Request.Context(), req.ImageDataURL, req.Notes)
	if err != nil {
		h.logger.Error("recipe generation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		respondError(c, err)
		return
	}

	h.logger.Info("recipe generation succeeded",
		zap.String("request_id", requestID),
		zap.Int("recipes", len(result.Recipes)))

	c.JSON(http.StatusOK, types.GenerateResponse{
		Summary: result.Summary,
		Recipes: result.Recipes,
	})
}
