package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/matching"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/substitution"
)

// Pagination describes one page of a filtered recipe listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// RecipeService handles recipe operations: listing, matching, substitutions,
// ratings and suggestions.
type RecipeService struct {
	recipes store.RecipeStore
	users   store.UserStore
	cache   *redis.Client
	logger  *zap.Logger
}

// NewRecipeService creates a new RecipeService instance. cache may be nil,
// in which case suggestion reads always go to the store.
func NewRecipeService(recipes store.RecipeStore, users store.UserStore, cache *redis.Client, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		recipes: recipes,
		users:   users,
		cache:   cache,
		logger:  logger,
	}
}

// ListRecipes returns one page of recipes matching the filter plus the
// pagination envelope.
func (s *RecipeService) ListRecipes(ctx context.Context, filter store.RecipeFilter) ([]models.Recipe, Pagination, error) {
	filter = filter.Normalize()

	recipes, total, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("listing recipes: %w", err)
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return recipes, Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

// GetRecipe returns the recipe with the given id.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	return s.recipes.Get(ctx, recipeID)
}

// MatchRecipes normalizes the user's ingredients, scores candidate recipes
// against them and returns the ranked results. When userID is non-empty the
// normalized ingredient set is recorded in that user's search history,
// exactly once per successful request.
func (s *RecipeService) MatchRecipes(ctx context.Context, ingredients []string, dietaryPrefs []string, userID string) ([]matching.MatchResult, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: at least one ingredient is required", ErrInvalidInput)
	}

	normalized := matching.NormalizeAll(ingredients)

	candidates, err := s.recipes.FindByIngredients(ctx, normalized, dietaryPrefs)
	if err != nil {
		return nil, fmt.Errorf("finding candidate recipes: %w", err)
	}

	results := matching.Match(normalized, candidates, dietaryPrefs)

	if userID != "" {
		if err := s.users.AppendSearchHistory(ctx, userID, normalized, time.Now().UTC()); err != nil {
			return nil, fmt.Errorf("recording search history: %w", err)
		}
	}

	return results, nil
}

// GetSubstitutions returns up to 5 substitutes for an ingredient, seeded
// with the recipe's own substitution entries when a recipe id is supplied.
func (s *RecipeService) GetSubstitutions(ctx context.Context, ingredient, recipeID string) ([]string, error) {
	if ingredient == "" {
		return nil, fmt.Errorf("%w: ingredient is required", ErrInvalidInput)
	}

	var recipe *models.Recipe
	if recipeID != "" {
		id, err := uuid.Parse(recipeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
		}
		recipe, err = s.recipes.Get(ctx, id)
		if err != nil && err != store.ErrNotFound {
			return nil, err
		}
	}

	return substitution.Resolve(ingredient, recipe), nil
}

// RateRecipe applies a user's rating to a recipe. A prior rating from the
// same user is replaced. Returns the recipe snapshot with recomputed
// average_rating and total_ratings.
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID, userID string, rating int, review string) (*models.Recipe, error) {
	if userID == "" || rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: valid user id and rating (1-5) are required", ErrInvalidInput)
	}

	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}

	recipe, err := s.recipes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := models.ApplyRating(*recipe, userID, rating, review, time.Now().UTC())
	if err := s.recipes.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("saving rating: %w", err)
	}

	s.logger.Info("recipe rated",
		zap.String("recipe_id", recipeID),
		zap.String("user_id", userID),
		zap.Int("rating", rating),
	)

	return &updated, nil
}

// Cuisines returns every cuisine present in the catalog, sorted.
func (s *RecipeService) Cuisines(ctx context.Context) ([]string, error) {
	return s.recipes.DistinctCuisines(ctx)
}

// DietaryTags returns every dietary tag present in the catalog, sorted.
func (s *RecipeService) DietaryTags(ctx context.Context) ([]string, error) {
	return s.recipes.DistinctDietaryTags(ctx)
}
