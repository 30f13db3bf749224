package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

func TestListRecipesEndpoint(t *testing.T) {
	env := setupEnv(t)
	env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium"})
	env.seedRecipe(t, models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy"})

	w := env.request(t, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 2)

	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 1, pagination["page"])
	assert.EqualValues(t, 12, pagination["limit"])
	assert.EqualValues(t, 2, pagination["total"])
	assert.EqualValues(t, 1, pagination["pages"])
}

func TestListRecipesFiltered(t *testing.T) {
	env := setupEnv(t)
	env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium", DietaryTags: models.StringArray{"Vegetarian"}})
	env.seedRecipe(t, models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy"})

	w := env.request(t, http.MethodGet, "/api/v1/recipes?cuisine=Italian&dietary=Vegetarian,Vegan", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Pizza", data[0].(map[string]interface{})["name"])
}

func TestGetRecipeEndpoint(t *testing.T) {
	env := setupEnv(t)
	recipe := env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium"})

	w := env.request(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Pizza", body["data"].(map[string]interface{})["name"])

	w = env.request(t, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/recipes/junk", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchEndpoint(t *testing.T) {
	env := setupEnv(t)
	env.seedRecipe(t, models.Recipe{
		Name:          "Margherita",
		Cuisine:       "Italian",
		Difficulty:    "Medium",
		Ingredients:   models.StringArray{"tomato sauce", "mozzarella", "basil"},
		AverageRating: 4.5,
	})

	w := env.request(t, http.MethodPost, "/api/v1/recipes/match", map[string]interface{}{
		"ingredients": []string{"tomato", "cheese"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["total_matches"])

	results := body["data"].([]interface{})
	first := results[0].(map[string]interface{})
	assert.EqualValues(t, 33, first["match_percentage"])
	assert.InDelta(t, 50.1, first["score"].(float64), 0.0001)
}

func TestMatchEndpointValidation(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/recipes/match", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/api/v1/recipes/match", map[string]interface{}{
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubstitutionsEndpoint(t *testing.T) {
	env := setupEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/recipes/substitutions?ingredient=butter", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "butter", data["ingredient"])
	assert.Len(t, data["substitutions"], 4)

	// missing ingredient parameter
	w = env.request(t, http.MethodGet, "/api/v1/recipes/substitutions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateEndpoint(t *testing.T) {
	env := setupEnv(t)
	recipe := env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium"})

	w := env.request(t, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/rate", map[string]interface{}{
		"user_id": "u1",
		"rating":  4,
		"review":  "solid",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["average_rating"])
	assert.EqualValues(t, 1, data["total_ratings"])
}

func TestRateEndpointValidation(t *testing.T) {
	env := setupEnv(t)
	recipe := env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium"})

	// rating out of range is rejected by binding
	w := env.request(t, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/rate", map[string]interface{}{
		"user_id": "u1",
		"rating":  9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing user id
	w = env.request(t, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/rate", map[string]interface{}{
		"rating": 3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown recipe
	w = env.request(t, http.MethodPost, "/api/v1/recipes/"+uuid.NewString()+"/rate", map[string]interface{}{
		"user_id": "u1",
		"rating":  3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestionsEndpoint(t *testing.T) {
	env := setupEnv(t)
	env.seedRecipe(t, models.Recipe{Name: "Top Pick", Cuisine: "Other", Difficulty: "Easy", AverageRating: 5})

	w := env.request(t, http.MethodGet, "/api/v1/recipes/suggestions/anyone", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Top Pick", data[0].(map[string]interface{})["name"])
}

func TestCuisinesAndDietaryTagsEndpoints(t *testing.T) {
	env := setupEnv(t)
	env.seedRecipe(t, models.Recipe{Name: "A", Cuisine: "Thai", Difficulty: "Easy", DietaryTags: models.StringArray{"Spicy"}})
	env.seedRecipe(t, models.Recipe{Name: "B", Cuisine: "Italian", Difficulty: "Easy", DietaryTags: models.StringArray{"Vegetarian"}})

	w := env.request(t, http.MethodGet, "/api/v1/recipes/cuisines", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, []interface{}{"Italian", "Thai"}, body["data"])

	w = env.request(t, http.MethodGet, "/api/v1/recipes/dietary-tags", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, []interface{}{"Spicy", "Vegetarian"}, body["data"])
}

func TestUploadImageUnconfigured(t *testing.T) {
	env := setupEnv(t)
	recipe := env.seedRecipe(t, models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium"})

	w := env.request(t, http.MethodPost, "/api/v1/recipes/"+recipe.ID.String()+"/image", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
