package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

const (
	maxSuggestions = 6
	// historyWindow caps how many recent searches feed the suggestion
	// query. History itself grows unbounded in storage.
	historyWindow = 5

	popularCacheKey = "recipes:popular"
	popularCacheTTL = 5 * time.Minute
)

// Suggestions derives recipe recommendations from the user's recent search
// history. Users with no history (or no profile at all) get the globally
// top-rated recipes instead.
func (s *RecipeService) Suggestions(ctx context.Context, userID string) ([]models.Recipe, error) {
	profile, err := s.users.GetUser(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading user profile: %w", err)
	}

	if profile == nil || len(profile.SearchHistory) == 0 {
		return s.popularRecipes(ctx)
	}

	ingredients := recentIngredients(profile.SearchHistory, historyWindow)

	candidates, err := s.recipes.FindByIngredients(ctx, ingredients, nil)
	if err != nil {
		return nil, fmt.Errorf("finding suggestion candidates: %w", err)
	}

	suggestions := make([]models.Recipe, 0, len(candidates))
	for _, recipe := range candidates {
		if !profile.HasFavorite(recipe.ID.String()) {
			suggestions = append(suggestions, recipe)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].AverageRating > suggestions[j].AverageRating
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// popularRecipes returns the top-rated recipes, cached briefly in redis
// since the result is identical for every user without history.
func (s *RecipeService) popularRecipes(ctx context.Context) ([]models.Recipe, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, popularCacheKey).Bytes()
		if err == nil {
			var recipes []models.Recipe
			if err := json.Unmarshal(cached, &recipes); err == nil {
				return recipes, nil
			}
		}
	}

	recipes, err := s.recipes.TopRated(ctx, maxSuggestions)
	if err != nil {
		return nil, fmt.Errorf("loading popular recipes: %w", err)
	}

	if s.cache != nil {
		payload, err := json.Marshal(recipes)
		if err == nil {
			if err := s.cache.Set(ctx, popularCacheKey, payload, popularCacheTTL).Err(); err != nil {
				s.logger.Warn("caching popular recipes failed", zap.Error(err))
			}
		}
	}

	return recipes, nil
}

// recentIngredients flattens the ingredients of the most recent history
// entries, deduplicating while preserving first-seen order.
func recentIngredients(history models.SearchHistoryList, window int) []string {
	start := len(history) - window
	if start < 0 {
		start = 0
	}

	seen := make(map[string]bool)
	ingredients := make([]string, 0)
	for _, entry := range history[start:] {
		for _, ing := range entry.Ingredients {
			if !seen[ing] {
				seen[ing] = true
				ingredients = append(ingredients, ing)
			}
		}
	}
	return ingredients
}
