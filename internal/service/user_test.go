package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

func TestGetProfileCreatesLazily(t *testing.T) {
	svc, _ := newUserService(t)

	profile, err := svc.GetProfile(context.Background(), "first-timer")
	require.NoError(t, err)
	assert.Equal(t, "first-timer", profile.UserID)
	assert.Zero(t, profile.FavoritesCount)
	assert.Zero(t, profile.SearchHistoryCount)
	assert.Empty(t, profile.Favorites)
}

func TestGetProfileResolvesFavorites(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	recipe := models.Recipe{Name: "Hummus", Cuisine: "Mediterranean", Difficulty: "Easy"}
	require.NoError(t, repo.Create(ctx, &recipe))

	_, err := svc.AddFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)
	require.NoError(t, repo.AppendSearchHistory(ctx, "u1", []string{"chickpeas"}, time.Now().UTC()))

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.FavoritesCount)
	assert.Equal(t, 1, profile.SearchHistoryCount)
	require.Len(t, profile.Favorites, 1)
	assert.Equal(t, "Hummus", profile.Favorites[0].Name)
}

func TestAddFavoriteValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.AddFavorite(ctx, "u1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFavorite(ctx, "u1", "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// the recipe must exist
	_, err = svc.AddFavorite(ctx, "u1", uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddFavoriteIdempotent(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	recipe := models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy"}
	require.NoError(t, repo.Create(ctx, &recipe))

	count, err := svc.AddFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.AddFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRemoveFavorite(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	recipe := models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy"}
	require.NoError(t, repo.Create(ctx, &recipe))
	_, err := svc.AddFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)

	count, err := svc.RemoveFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)
	assert.Zero(t, count)

	// unknown user surfaces not found
	_, err = svc.RemoveFavorite(ctx, "ghost", recipe.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsFavorite(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	recipe := models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy"}
	require.NoError(t, repo.Create(ctx, &recipe))

	// unknown users have no favorites, not an error
	fav, err := svc.IsFavorite(ctx, "ghost", recipe.ID.String())
	require.NoError(t, err)
	assert.False(t, fav)

	_, err = svc.AddFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)

	fav, err = svc.IsFavorite(ctx, "u1", recipe.ID.String())
	require.NoError(t, err)
	assert.True(t, fav)

	fav, err = svc.IsFavorite(ctx, "u1", uuid.NewString())
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestUpdatePreferencesFiltersUnknownTags(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	prefs, err := svc.UpdatePreferences(ctx, "u1", []string{"Vegan", "Paleo", "Keto"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan", "Keto"}, prefs)

	// empty list clears the preferences
	prefs, err = svc.UpdatePreferences(ctx, "u1", []string{})
	require.NoError(t, err)
	assert.Empty(t, prefs)
}
