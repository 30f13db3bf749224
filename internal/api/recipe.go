package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/service"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// RecipeHandler serves the recipe endpoints.
type RecipeHandler struct {
	service service.IRecipeService
	images  service.IImageService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance. images may be nil
// when no object storage is configured; the upload endpoint then reports
// the feature as unavailable.
func NewRecipeHandler(svc service.IRecipeService, images service.IImageService, logger *zap.Logger) *RecipeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeHandler{
		service: svc,
		images:  images,
		logger:  logger,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/cuisines", h.Cuisines)
		recipes.GET("/dietary-tags", h.DietaryTags)
		recipes.POST("/match", h.MatchRecipes)
		recipes.GET("/substitutions", h.GetSubstitutions)
		recipes.GET("/suggestions/:userId", h.Suggestions)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("/:id/rate", h.RateRecipe)
		recipes.POST("/:id/image", h.UploadImage)
	}
}

// ListRecipes returns a filtered, sorted, paginated page of recipes.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := store.RecipeFilter{
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		SortBy:     c.Query("sortBy"),
	}
	if dietary := c.Query("dietary"); dietary != "" {
		for _, tag := range strings.Split(dietary, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.DietaryTags = append(filter.DietaryTags, tag)
			}
		}
	}
	filter.MaxTime, _ = strconv.Atoi(c.Query("maxTime"))
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	recipes, pagination, err := h.service.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       recipes,
		"pagination": pagination,
	})
}

// GetRecipe returns a single recipe by id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.service.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    recipe,
	})
}

// MatchRecipes ranks recipes against the ingredients the user has on hand.
func (h *RecipeHandler) MatchRecipes(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results, err := h.service.MatchRecipes(c.Request.Context(), req.Ingredients, req.DietaryPreferences, req.UserID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"data":          results,
		"total_matches": len(results),
	})
}

// GetSubstitutions returns up to 5 substitutes for an ingredient.
func (h *RecipeHandler) GetSubstitutions(c *gin.Context) {
	ingredient := c.Query("ingredient")
	substitutes, err := h.service.GetSubstitutions(c.Request.Context(), ingredient, c.Query("recipe_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"ingredient":    ingredient,
			"substitutions": substitutes,
		},
	})
}

// RateRecipe records a user's 1-5 rating; rating the same recipe again
// replaces the previous rating.
func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.service.RateRecipe(c.Request.Context(), c.Param("id"), req.UserID, req.Rating, req.Review)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Rating submitted successfully",
		"data": gin.H{
			"average_rating": recipe.AverageRating,
			"total_ratings":  recipe.TotalRatings,
		},
	})
}

// Suggestions returns up to 6 personalized recipe recommendations.
func (h *RecipeHandler) Suggestions(c *gin.Context) {
	recipes, err := h.service.Suggestions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    recipes,
	})
}

// Cuisines lists every cuisine present in the catalog.
func (h *RecipeHandler) Cuisines(c *gin.Context) {
	cuisines, err := h.service.Cuisines(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cuisines,
	})
}

// DietaryTags lists every dietary tag present in the catalog.
func (h *RecipeHandler) DietaryTags(c *gin.Context) {
	tags, err := h.service.DietaryTags(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
	})
}

// UploadImage stores a recipe image and records its URL on the recipe.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": "Image storage is not configured",
		})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide an image",
		})
		return
	}
	if file.Size > service.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "File too large. Maximum size is 5MB",
		})
		return
	}

	reader, err := file.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), c.Param("id"), data, file.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"image_url": url},
	})
}
