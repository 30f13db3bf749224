package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/service"
	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/store"
)

type testEnv struct {
	router *gin.Engine
	store  *store.Store
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.UserProfile{}))

	repo := store.New(db)
	recipeService := service.NewRecipeService(repo, repo, nil, nil)
	userService := service.NewUserService(repo, repo, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(recipeService, nil, nil).RegisterRoutes(v1)
	NewUserHandler(userService, nil).RegisterRoutes(v1)
	NewIngredientHandler(nil).RegisterRoutes(v1)

	return &testEnv{router: router, store: repo}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedRecipe(t *testing.T, recipe models.Recipe) models.Recipe {
	t.Helper()
	require.NoError(t, e.store.Create(context.Background(), &recipe))
	return recipe
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
