package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/ingredient"
)

// IngredientHandler serves ingredient recognition endpoints.
type IngredientHandler struct {
	logger *zap.Logger
}

// NewIngredientHandler creates a new IngredientHandler instance
func NewIngredientHandler(logger *zap.Logger) *IngredientHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngredientHandler{logger: logger}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.POST("/extract", h.Extract)
	}
}

// Extract detects known ingredients in free-form text, such as OCR output
// or a pasted shopping list.
func (h *IngredientHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	detections := ingredient.Extract(req.Text)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"ingredients": detections,
			"count":       len(detections),
		},
	})
}
