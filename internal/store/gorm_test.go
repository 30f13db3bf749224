package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	// A named in-memory database keeps gorm's pooled connections on the
	// same store while isolating tests from each other.
	dsn := fmt.Sprintf("file:store_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}, &models.UserProfile{}))

	return New(db)
}

func seedRecipes(t *testing.T, s *Store, recipes ...models.Recipe) {
	t.Helper()
	for i := range recipes {
		require.NoError(t, s.Create(context.Background(), &recipes[i]))
	}
}

func TestCreateAssignsIDAndEmbedding(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	recipe := models.Recipe{Name: "Toast", Cuisine: "Other", Difficulty: "Easy"}
	require.NoError(t, s.Create(ctx, &recipe))

	assert.NotEqual(t, uuid.Nil, recipe.ID)
	assert.NotEmpty(t, recipe.Embedding.Slice())
}

func TestGetNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	recipe := models.Recipe{
		Name:        "Margherita Pizza",
		Cuisine:     "Italian",
		Difficulty:  "Medium",
		Ingredients: models.StringArray{"tomato sauce", "mozzarella"},
		DietaryTags: models.StringArray{"Vegetarian"},
		Nutrition:   models.Nutrition{Calories: 280, Protein: 12},
		Substitutions: models.SubstitutionMap{
			"mozzarella": {"vegan cheese"},
		},
	}
	require.NoError(t, s.Create(ctx, &recipe))

	got, err := s.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita Pizza", got.Name)
	assert.Equal(t, models.StringArray{"tomato sauce", "mozzarella"}, got.Ingredients)
	assert.Equal(t, 280, got.Nutrition.Calories)
	assert.Equal(t, []string{"vegan cheese"}, got.Substitutions["mozzarella"])
}

func TestListFilters(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium", PrepTime: 20, CookTime: 15, DietaryTags: models.StringArray{"Vegetarian"}},
		models.Recipe{Name: "Carbonara", Cuisine: "Italian", Difficulty: "Medium", PrepTime: 10, CookTime: 20, DietaryTags: models.StringArray{"High-Protein"}},
		models.Recipe{Name: "Tacos", Cuisine: "Mexican", Difficulty: "Easy", PrepTime: 20, CookTime: 20, DietaryTags: models.StringArray{"Dairy-Free", "High-Protein"}},
	)

	recipes, total, err := s.List(ctx, RecipeFilter{Cuisine: "Italian"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, recipes, 2)

	recipes, total, err = s.List(ctx, RecipeFilter{Difficulty: "Easy"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Tacos", recipes[0].Name)

	// any-of tag semantics
	_, total, err = s.List(ctx, RecipeFilter{DietaryTags: []string{"Vegetarian", "Dairy-Free"}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// conjunctive criteria
	_, total, err = s.List(ctx, RecipeFilter{Cuisine: "Italian", DietaryTags: []string{"High-Protein"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = s.List(ctx, RecipeFilter{MaxTime: 30})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestListSearch(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Greek Salad", Cuisine: "Mediterranean", Difficulty: "Easy", Ingredients: models.StringArray{"cucumber", "feta cheese"}},
		models.Recipe{Name: "Pad Thai", Cuisine: "Thai", Difficulty: "Medium", Ingredients: models.StringArray{"rice noodles", "shrimp"}},
	)

	// matches name
	_, total, err := s.List(ctx, RecipeFilter{Search: "greek"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// matches ingredients
	recipes, total, err := s.List(ctx, RecipeFilter{Search: "Shrimp"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Pad Thai", recipes[0].Name)

	_, total, err = s.List(ctx, RecipeFilter{Search: "sushi"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListSorting(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Slow", Cuisine: "Other", Difficulty: "Easy", PrepTime: 30, CookTime: 60, AverageRating: 3},
		models.Recipe{Name: "Quick", Cuisine: "Other", Difficulty: "Easy", PrepTime: 5, CookTime: 10, AverageRating: 4},
		models.Recipe{Name: "Best", Cuisine: "Other", Difficulty: "Easy", PrepTime: 20, CookTime: 20, AverageRating: 5},
	)

	recipes, _, err := s.List(ctx, RecipeFilter{SortBy: SortRating})
	require.NoError(t, err)
	assert.Equal(t, "Best", recipes[0].Name)

	recipes, _, err = s.List(ctx, RecipeFilter{SortBy: SortTime})
	require.NoError(t, err)
	assert.Equal(t, "Quick", recipes[0].Name)

	// unknown key falls back to rating
	recipes, _, err = s.List(ctx, RecipeFilter{SortBy: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, "Best", recipes[0].Name)
}

func TestListPagination(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedRecipes(t, s, models.Recipe{
			Name:       fmt.Sprintf("Recipe %02d", i),
			Cuisine:    "Other",
			Difficulty: "Easy",
		})
	}

	recipes, total, err := s.List(ctx, RecipeFilter{Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, recipes, 12)

	recipes, _, err = s.List(ctx, RecipeFilter{Page: 3})
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	recipes, _, err = s.List(ctx, RecipeFilter{Page: 4})
	require.NoError(t, err)
	assert.Empty(t, recipes)

	// invalid page falls back to the first
	recipes, _, err = s.List(ctx, RecipeFilter{Page: -2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, recipes, 5)
}

func TestFindByIngredients(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Pizza", Cuisine: "Italian", Difficulty: "Medium", Ingredients: models.StringArray{"tomato sauce", "mozzarella"}, DietaryTags: models.StringArray{"Vegetarian"}},
		models.Recipe{Name: "Butter Chicken", Cuisine: "Indian", Difficulty: "Medium", Ingredients: models.StringArray{"chicken", "tomatoes", "cream"}},
		models.Recipe{Name: "Miso Soup", Cuisine: "Japanese", Difficulty: "Easy", Ingredients: models.StringArray{"dashi", "tofu"}},
	)

	recipes, err := s.FindByIngredients(ctx, []string{"tomato"}, nil)
	require.NoError(t, err)
	assert.Len(t, recipes, 2)

	recipes, err = s.FindByIngredients(ctx, []string{"tomato"}, []string{"Vegetarian"})
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	assert.Equal(t, "Pizza", recipes[0].Name)

	recipes, err = s.FindByIngredients(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestTopRated(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Mid", Cuisine: "Other", Difficulty: "Easy", AverageRating: 3},
		models.Recipe{Name: "Top", Cuisine: "Other", Difficulty: "Easy", AverageRating: 5},
		models.Recipe{Name: "Low", Cuisine: "Other", Difficulty: "Easy", AverageRating: 1},
	)

	recipes, err := s.TopRated(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Top", recipes[0].Name)
	assert.Equal(t, "Mid", recipes[1].Name)
}

func TestFindByIDs(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	a := models.Recipe{Name: "A", Cuisine: "Other", Difficulty: "Easy"}
	b := models.Recipe{Name: "B", Cuisine: "Other", Difficulty: "Easy"}
	seedRecipes(t, s, a)
	require.NoError(t, s.Create(ctx, &b))

	recipes, err := s.FindByIDs(ctx, []string{b.ID.String(), uuid.NewString()})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "B", recipes[0].Name)

	recipes, err = s.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestDistinctValues(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "A", Cuisine: "Italian", Difficulty: "Easy", DietaryTags: models.StringArray{"Vegetarian", "Vegan"}},
		models.Recipe{Name: "B", Cuisine: "Italian", Difficulty: "Easy", DietaryTags: models.StringArray{"Vegan", "Gluten-Free"}},
		models.Recipe{Name: "C", Cuisine: "Thai", Difficulty: "Easy"},
	)

	cuisines, err := s.DistinctCuisines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Italian", "Thai"}, cuisines)

	tags, err := s.DistinctDietaryTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gluten-Free", "Vegan", "Vegetarian"}, tags)
}

func TestGetOrCreateUser(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.GetUser(ctx, "newcomer")
	assert.ErrorIs(t, err, ErrNotFound)

	profile, err := s.GetOrCreateUser(ctx, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", profile.UserID)
	assert.Empty(t, profile.Favorites)

	again, err := s.GetUser(ctx, "newcomer")
	require.NoError(t, err)
	assert.Equal(t, profile.UserID, again.UserID)
}

func TestFavoritesSetSemantics(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	profile, err := s.AddFavorite(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"r1"}, profile.Favorites)

	// duplicate add is a no-op
	profile, err = s.AddFavorite(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Len(t, profile.Favorites, 1)

	profile, err = s.AddFavorite(ctx, "u1", "r2")
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"r1", "r2"}, profile.Favorites)

	profile, err = s.RemoveFavorite(ctx, "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"r2"}, profile.Favorites)

	// removing an absent favorite is a no-op
	profile, err = s.RemoveFavorite(ctx, "u1", "r9")
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"r2"}, profile.Favorites)
}

func TestRemoveFavoriteUnknownUser(t *testing.T) {
	s := setupStore(t)

	_, err := s.RemoveFavorite(context.Background(), "ghost", "r1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDietaryPreferences(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	profile, err := s.SetDietaryPreferences(ctx, "u1", []string{"Vegan", "Gluten-Free"})
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"Vegan", "Gluten-Free"}, profile.DietaryPreferences)

	// replacement, not merge
	profile, err = s.SetDietaryPreferences(ctx, "u1", []string{"Keto"})
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"Keto"}, profile.DietaryPreferences)
}

func TestAppendSearchHistory(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.AppendSearchHistory(ctx, "u1", []string{"tomato", "basil"}, now))
	require.NoError(t, s.AppendSearchHistory(ctx, "u1", []string{"rice"}, now.Add(time.Minute)))

	profile, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, profile.SearchHistory, 2)
	assert.Equal(t, []string{"tomato", "basil"}, profile.SearchHistory[0].Ingredients)
	assert.Equal(t, []string{"rice"}, profile.SearchHistory[1].Ingredients)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	seedRecipes(t, s,
		models.Recipe{Name: "Margherita Pizza", Cuisine: "Italian", Difficulty: "Medium", DietaryTags: models.StringArray{"Gluten-Free"}},
		models.Recipe{Name: "Double Chocolate Brownie", Cuisine: "American", Difficulty: "Easy", Ingredients: models.StringArray{"100% dark chocolate", "butter"}},
	)

	// bare wildcards match nothing unless the text contains them literally
	_, total, err := s.List(ctx, RecipeFilter{Search: "_"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	recipes, total, err := s.List(ctx, RecipeFilter{Search: "100%"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Double Chocolate Brownie", recipes[0].Name)

	candidates, err := s.FindByIngredients(ctx, []string{"100% dark"}, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Double Chocolate Brownie", candidates[0].Name)

	candidates, err = s.FindByIngredients(ctx, []string{"_"}, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	// an underscore in a tag is not a single-character wildcard
	_, total, err = s.List(ctx, RecipeFilter{DietaryTags: []string{"Gluten_Free"}})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}
