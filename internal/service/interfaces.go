package service

import (
	"context"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/matching"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context, filter store.RecipeFilter) ([]models.Recipe, Pagination, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	MatchRecipes(ctx context.Context, ingredients []string, dietaryPrefs []string, userID string) ([]matching.MatchResult, error)
	GetSubstitutions(ctx context.Context, ingredient, recipeID string) ([]string, error)
	RateRecipe(ctx context.Context, recipeID, userID string, rating int, review string) (*models.Recipe, error)
	Suggestions(ctx context.Context, userID string) ([]models.Recipe, error)
	Cuisines(ctx context.Context) ([]string, error)
	DietaryTags(ctx context.Context) ([]string, error)
}

// IUserService defines the interface for user profile operations
type IUserService interface {
	GetProfile(ctx context.Context, userID string) (*ProfileDetails, error)
	AddFavorite(ctx context.Context, userID, recipeID string) (int, error)
	RemoveFavorite(ctx context.Context, userID, recipeID string) (int, error)
	IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	UpdatePreferences(ctx context.Context, userID string, preferences []string) ([]string, error)
}

// IImageService defines the interface for recipe image uploads
type IImageService interface {
	UploadRecipeImage(ctx context.Context, recipeID string, data []byte, contentType string) (string, error)
}
