package api

// MatchRequest is the body of POST /recipes/match.
type MatchRequest struct {
	Ingredients        []string `json:"ingredients" binding:"required,min=1"`
	DietaryPreferences []string `json:"dietary_preferences"`
	UserID             string   `json:"user_id"`
}

// RateRequest is the body of POST /recipes/:id/rate.
type RateRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review"`
}

// AddFavoriteRequest is the body of POST /users/:userId/favorites.
type AddFavoriteRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
}

// PreferencesRequest is the body of PUT /users/:userId/preferences. The
// pointer distinguishes a missing or null field from an empty list, which is
// valid and clears the preferences.
type PreferencesRequest struct {
	Preferences *[]string `json:"preferences" binding:"required"`
}

// ExtractRequest is the body of POST /ingredients/extract.
type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}
