// Package store is the persistence boundary: recipes and user profiles live
// in the document store, the engine packages only consume snapshots.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

// ErrNotFound is returned when a requested recipe or user does not exist.
var ErrNotFound = errors.New("record not found")

// Sort keys accepted by RecipeFilter. Anything else falls back to SortRating.
const (
	SortRating = "rating"
	SortTime   = "time"
	SortNewest = "newest"
)

// RecipeFilter is the explicit filter configuration for listing recipes.
// All criteria are conjunctive; zero values disable a criterion.
type RecipeFilter struct {
	Cuisine     string
	Difficulty  string
	DietaryTags []string
	MaxTime     int
	Search      string
	SortBy      string
	Page        int
	Limit       int
}

// Normalize applies the pagination defaults and bounds.
func (f RecipeFilter) Normalize() RecipeFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 12
	}
	return f
}

// RecipeStore exposes the recipe collection.
type RecipeStore interface {
	// List returns one page of recipes matching the filter plus the total
	// matching count.
	List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error)
	// Get returns the recipe with the given id, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	// Create inserts a new recipe.
	Create(ctx context.Context, recipe *models.Recipe) error
	// Save writes back a full recipe snapshot.
	Save(ctx context.Context, recipe *models.Recipe) error
	// FindByIngredients returns candidate recipes whose ingredient list
	// loosely overlaps any of the given normalized ingredients, optionally
	// restricted to recipes carrying at least one of the dietary tags.
	FindByIngredients(ctx context.Context, ingredients []string, dietaryTags []string) ([]models.Recipe, error)
	// FindByIDs returns the recipes with the given ids, skipping unknowns.
	FindByIDs(ctx context.Context, ids []string) ([]models.Recipe, error)
	// TopRated returns the highest average-rated recipes.
	TopRated(ctx context.Context, limit int) ([]models.Recipe, error)
	// DistinctCuisines returns every cuisine present, sorted.
	DistinctCuisines(ctx context.Context) ([]string, error)
	// DistinctDietaryTags returns every dietary tag present, sorted.
	DistinctDietaryTags(ctx context.Context) ([]string, error)
}

// UserStore exposes the user profile collection. Profiles are created lazily
// on first write-side access; Get never creates.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.UserProfile, error)
	GetOrCreateUser(ctx context.Context, userID string) (*models.UserProfile, error)
	// AddFavorite adds the recipe id to the user's favorites set, creating
	// the profile if missing. Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, userID, recipeID string) (*models.UserProfile, error)
	// RemoveFavorite removes the recipe id from the favorites set. Returns
	// ErrNotFound when the user does not exist.
	RemoveFavorite(ctx context.Context, userID, recipeID string) (*models.UserProfile, error)
	// SetDietaryPreferences replaces the preference set, creating the
	// profile if missing. Values must already be filtered to recognized tags.
	SetDietaryPreferences(ctx context.Context, userID string, prefs []string) (*models.UserProfile, error)
	// AppendSearchHistory appends one search entry to the user's history,
	// creating the profile if missing.
	AppendSearchHistory(ctx context.Context, userID string, ingredients []string, at time.Time) error
}
