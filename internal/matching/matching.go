// Package matching implements the ingredient matching engine: normalization
// of free-text ingredient input and scoring of candidate recipes against it.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

// Score weights. Full ingredient coverage contributes 70 points, a perfect
// average rating contributes 30.
const (
	percentageWeight = 0.7
	ratingWeight     = 6.0
)

// MatchResult is the per-recipe outcome of a match request. It is computed
// per request and never persisted.
type MatchResult struct {
	Recipe             models.Recipe `json:"recipe"`
	Score              float64       `json:"score"`
	MatchPercentage    int           `json:"match_percentage"`
	MatchedIngredients []string      `json:"matched_ingredients"`
	MissingIngredients []string      `json:"missing_ingredients"`
	MatchCount         int           `json:"match_count"`
	TotalIngredients   int           `json:"total_ingredients"`
}

// Normalize canonicalizes a raw ingredient string for comparison. It is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// NormalizeAll normalizes every ingredient, preserving order and duplicates.
func NormalizeAll(raw []string) []string {
	normalized := make([]string, len(raw))
	for i, ing := range raw {
		normalized[i] = Normalize(ing)
	}
	return normalized
}

// Overlaps reports whether two normalized ingredient strings match under the
// loose substring policy: either contains the other. "tomato" matches
// "tomato sauce" and vice versa.
func Overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Match scores every candidate recipe against the user's ingredients and
// returns the surviving candidates ordered by descending score. A candidate
// survives when at least one of its ingredients overlaps a user ingredient
// and, if dietaryFilter is non-empty, it carries at least one of the
// requested tags. Ties keep the candidates' relative input order.
//
// Callers must reject empty userIngredients before invoking Match.
func Match(userIngredients []string, candidates []models.Recipe, dietaryFilter []string) []MatchResult {
	normalized := NormalizeAll(userIngredients)

	results := make([]MatchResult, 0, len(candidates))
	for _, recipe := range candidates {
		if len(dietaryFilter) > 0 && !hasAnyTag(recipe.DietaryTags, dietaryFilter) {
			continue
		}

		result := score(recipe, normalized)
		if result.MatchCount == 0 {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// score partitions a recipe's ingredients into matched and missing against
// the normalized user ingredients and computes the weighted score. The match
// percentage is defined as 0 for a recipe with no ingredients.
func score(recipe models.Recipe, normalized []string) MatchResult {
	matched := make([]string, 0, len(recipe.Ingredients))
	missing := make([]string, 0, len(recipe.Ingredients))
	for _, raw := range recipe.Ingredients {
		ing := strings.ToLower(raw)
		if overlapsAny(ing, normalized) {
			matched = append(matched, ing)
		} else {
			missing = append(missing, ing)
		}
	}

	total := len(recipe.Ingredients)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(len(matched)) / float64(total) * 100))
	}

	return MatchResult{
		Recipe:             recipe,
		Score:              float64(percentage)*percentageWeight + recipe.AverageRating*ratingWeight,
		MatchPercentage:    percentage,
		MatchedIngredients: matched,
		MissingIngredients: missing,
		MatchCount:         len(matched),
		TotalIngredients:   total,
	}
}

func overlapsAny(ingredient string, userIngredients []string) bool {
	for _, u := range userIngredients {
		if Overlaps(ingredient, u) {
			return true
		}
	}
	return false
}

func hasAnyTag(tags, wanted []string) bool {
	for _, t := range tags {
		for _, w := range wanted {
			if t == w {
				return true
			}
		}
	}
	return false
}
