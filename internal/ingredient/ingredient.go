// Package ingredient provides free-text ingredient extraction against a
// fixed pantry lexicon, plus coarse ingredient categorization.
package ingredient

import "strings"

// lexicon is the recognized ingredient vocabulary for text extraction.
var lexicon = []string{
	"tomato", "onion", "garlic", "potato", "carrot", "spinach", "broccoli",
	"pepper", "cucumber", "lettuce", "cabbage", "cauliflower", "mushroom",
	"chicken", "beef", "pork", "fish", "egg", "tofu",
	"rice", "pasta", "bread", "flour", "sugar", "salt",
	"milk", "cheese", "butter", "yogurt", "cream",
	"oil", "vinegar", "soy sauce", "ketchup", "mustard",
	"basil", "oregano", "thyme", "cilantro", "parsley",
	"lemon", "lime", "orange", "apple", "banana",
}

type category struct {
	name  string
	items []string
}

// categories is walked in declaration order; the first matching category
// wins.
var categories = []category{
	{"vegetable", []string{"tomato", "onion", "garlic", "spinach", "potato", "carrot", "cucumber", "broccoli", "pepper"}},
	{"fruit", []string{"apple", "banana", "orange", "lemon", "lime", "strawberry"}},
	{"herb", []string{"basil", "mint", "cilantro", "parsley", "thyme"}},
	{"dairy", []string{"milk", "cheese", "yogurt", "butter", "cream"}},
	{"protein", []string{"chicken", "beef", "egg", "tofu", "fish"}},
}

// Detection pairs an extracted ingredient with its category.
type Detection struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Extract returns every lexicon ingredient mentioned in the text, in lexicon
// order, each tagged with its category.
func Extract(text string) []Detection {
	normalized := strings.ToLower(text)
	found := make([]Detection, 0)
	for _, ing := range lexicon {
		if strings.Contains(normalized, ing) {
			found = append(found, Detection{Name: ing, Category: Categorize(ing)})
		}
	}
	return found
}

// Categorize returns the coarse category of an ingredient, or "other" when
// none of the category item lists mention it.
func Categorize(ingredient string) string {
	for _, c := range categories {
		for _, item := range c.items {
			if strings.Contains(ingredient, item) {
				return c.name
			}
		}
	}
	return "other"
}
