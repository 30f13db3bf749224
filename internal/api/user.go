package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/service"
)

// UserHandler serves the user profile endpoints.
type UserHandler struct {
	service service.IUserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(svc service.IUserService, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{
		service: svc,
		logger:  logger,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:userId", h.GetProfile)
		users.POST("/:userId/favorites", h.AddFavorite)
		users.DELETE("/:userId/favorites/:recipeId", h.RemoveFavorite)
		users.GET("/:userId/favorites/:recipeId", h.CheckFavorite)
		users.PUT("/:userId/preferences", h.UpdatePreferences)
	}
}

// GetProfile returns the user's profile, creating it on first access.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// AddFavorite adds a recipe to the user's favorites.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	count, err := h.service.AddFavorite(c.Request.Context(), c.Param("userId"), req.RecipeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe added to favorites",
		"data":    gin.H{"favorites_count": count},
	})
}

// RemoveFavorite removes a recipe from the user's favorites.
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	count, err := h.service.RemoveFavorite(c.Request.Context(), c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe removed from favorites",
		"data":    gin.H{"favorites_count": count},
	})
}

// CheckFavorite reports whether a recipe is in the user's favorites.
func (h *UserHandler) CheckFavorite(c *gin.Context) {
	isFavorite, err := h.service.IsFavorite(c.Request.Context(), c.Param("userId"), c.Param("recipeId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"is_favorite": isFavorite},
	})
}

// UpdatePreferences replaces the user's dietary preferences; unrecognized
// tags are dropped.
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	prefs, err := h.service.UpdatePreferences(c.Request.Context(), c.Param("userId"), *req.Preferences)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Dietary preferences updated",
		"data":    gin.H{"dietary_preferences": prefs},
	})
}
