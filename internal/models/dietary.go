package models

// ValidDietaryTags is the recognized set of dietary classifications. User
// preference updates are filtered to this list.
var ValidDietaryTags = []string{
	"Vegetarian",
	"Vegan",
	"Gluten-Free",
	"Dairy-Free",
	"Keto",
	"Low-Carb",
	"High-Protein",
	"Nut-Free",
	"Spicy",
	"Low-Calorie",
}

// ValidCuisines enumerates the recipe cuisine classifications.
var ValidCuisines = []string{
	"Italian",
	"Indian",
	"Chinese",
	"Mexican",
	"American",
	"Mediterranean",
	"Thai",
	"Japanese",
	"French",
	"Other",
}

// ValidDifficulties enumerates the recipe difficulty levels.
var ValidDifficulties = []string{"Easy", "Medium", "Hard"}

// IsValidDietaryTag reports whether tag is a recognized dietary tag.
func IsValidDietaryTag(tag string) bool {
	for _, t := range ValidDietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterDietaryTags drops unrecognized values, preserving input order.
func FilterDietaryTags(tags []string) []string {
	filtered := make([]string, 0, len(tags))
	for _, t := range tags {
		if IsValidDietaryTag(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
