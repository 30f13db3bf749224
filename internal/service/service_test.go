package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:service_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.UserProfile{}))

	return store.New(db)
}

func newRecipeService(t *testing.T) (*RecipeService, *store.Store) {
	t.Helper()
	repo := setupStore(t)
	return NewRecipeService(repo, repo, nil, nil), repo
}

func newUserService(t *testing.T) (*UserService, *store.Store) {
	t.Helper()
	repo := setupStore(t)
	return NewUserService(repo, repo, nil), repo
}
