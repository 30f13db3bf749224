package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

// ProfileDetails is the user profile enriched with favorite recipe data.
type ProfileDetails struct {
	UserID             string          `json:"user_id"`
	DietaryPreferences []string        `json:"dietary_preferences"`
	Favorites          []models.Recipe `json:"favorites"`
	FavoritesCount     int             `json:"favorites_count"`
	SearchHistoryCount int             `json:"search_history_count"`
}

// UserService handles user profile operations. Profiles are created lazily:
// the first access to an unknown userId creates an empty profile.
type UserService struct {
	users   store.UserStore
	recipes store.RecipeStore
	logger  *zap.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(users store.UserStore, recipes store.RecipeStore, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		users:   users,
		recipes: recipes,
		logger:  logger,
	}
}

// GetProfile returns the user's profile, creating it if missing, with the
// favorite recipes resolved to full records.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileDetails, error) {
	profile, err := s.users.GetOrCreateUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user profile: %w", err)
	}

	favorites, err := s.recipes.FindByIDs(ctx, profile.Favorites)
	if err != nil {
		return nil, fmt.Errorf("loading favorite recipes: %w", err)
	}

	return &ProfileDetails{
		UserID:             profile.UserID,
		DietaryPreferences: profile.DietaryPreferences,
		Favorites:          favorites,
		FavoritesCount:     len(profile.Favorites),
		SearchHistoryCount: len(profile.SearchHistory),
	}, nil
}

// AddFavorite adds a recipe to the user's favorites set. The recipe must
// exist; the profile is created if missing. Returns the new favorites count.
func (s *UserService) AddFavorite(ctx context.Context, userID, recipeID string) (int, error) {
	if recipeID == "" {
		return 0, fmt.Errorf("%w: recipe id is required", ErrInvalidInput)
	}

	id, err := uuid.Parse(recipeID)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	if _, err := s.recipes.Get(ctx, id); err != nil {
		return 0, err
	}

	profile, err := s.users.AddFavorite(ctx, userID, recipeID)
	if err != nil {
		return 0, fmt.Errorf("adding favorite: %w", err)
	}

	s.logger.Info("favorite added",
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
	)
	return len(profile.Favorites), nil
}

// RemoveFavorite removes a recipe from the user's favorites set. Returns
// ErrNotFound when the user has no profile.
func (s *UserService) RemoveFavorite(ctx context.Context, userID, recipeID string) (int, error) {
	profile, err := s.users.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return 0, err
	}
	return len(profile.Favorites), nil
}

// IsFavorite reports whether the recipe is in the user's favorites. Unknown
// users simply have no favorites.
func (s *UserService) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	profile, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.HasFavorite(recipeID), nil
}

// UpdatePreferences replaces the user's dietary preferences, dropping any
// unrecognized tags. The profile is created if missing.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, preferences []string) ([]string, error) {
	filtered := models.FilterDietaryTags(preferences)

	profile, err := s.users.SetDietaryPreferences(ctx, userID, filtered)
	if err != nil {
		return nil, fmt.Errorf("updating preferences: %w", err)
	}
	return profile.DietaryPreferences, nil
}
