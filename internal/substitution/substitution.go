// Package substitution resolves ingredient substitution suggestions from
// recipe-specific overrides and a static pantry table.
package substitution

import (
	"strings"

	"github.com/Chetanshrivas/smart-recipe-generator-backend/internal/models"
)

// maxSuggestions caps the number of substitutes returned per ingredient.
const maxSuggestions = 5

type entry struct {
	name        string
	substitutes []string
}

// pantryTable maps common pantry ingredients to their substitutes. It is a
// slice, not a map, so iteration order is fixed at declaration order and
// results are reproducible.
var pantryTable = []entry{
	{"butter", []string{"coconut oil", "olive oil", "ghee", "margarine"}},
	{"egg", []string{"flax egg", "applesauce", "mashed banana", "yogurt"}},
	{"milk", []string{"almond milk", "soy milk", "oat milk", "coconut milk"}},
	{"flour", []string{"almond flour", "coconut flour", "oat flour", "rice flour"}},
	{"sugar", []string{"honey", "maple syrup", "stevia", "coconut sugar"}},
	{"yogurt", []string{"coconut yogurt", "sour cream", "buttermilk"}},
	{"cream", []string{"coconut cream", "cashew cream", "evaporated milk"}},
	{"cheese", []string{"nutritional yeast", "vegan cheese", "tofu"}},
	{"chicken", []string{"tofu", "tempeh", "seitan", "chickpeas"}},
	{"beef", []string{"mushrooms", "lentils", "beyond meat", "tempeh"}},
	{"soy sauce", []string{"coconut aminos", "tamari", "liquid aminos"}},
	{"rice", []string{"quinoa", "cauliflower rice", "barley", "couscous"}},
	{"pasta", []string{"zucchini noodles", "spaghetti squash", "rice noodles"}},
	{"bread", []string{"lettuce wrap", "rice cakes", "corn tortillas"}},
	{"oil", []string{"applesauce", "mashed banana", "greek yogurt"}},
	{"mayonnaise", []string{"greek yogurt", "avocado", "hummus"}},
	{"sour cream", []string{"greek yogurt", "coconut cream", "cashew cream"}},
	{"buttermilk", []string{"milk + lemon juice", "yogurt + water", "kefir"}},
	{"breadcrumbs", []string{"oats", "crushed crackers", "almond flour"}},
	{"cornstarch", []string{"arrowroot powder", "tapioca starch", "flour"}},
	{"baking powder", []string{"baking soda + cream of tartar"}},
	{"vanilla extract", []string{"vanilla bean", "maple syrup", "honey"}},
	{"lemon juice", []string{"lime juice", "vinegar", "cream of tartar"}},
	{"wine", []string{"broth", "grape juice", "vinegar + water"}},
	{"heavy cream", []string{"coconut cream", "milk + butter", "evaporated milk"}},
}

// Resolve returns up to 5 substitutes for the given ingredient. When a recipe
// is supplied and carries a substitution entry keyed exactly by ingredient,
// those recipe-specific values come first. Entries from the pantry table
// whose name substring-overlaps the ingredient are unioned in afterwards,
// deduplicated in first-seen order.
func Resolve(ingredient string, recipe *models.Recipe) []string {
	result := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool)

	add := func(subs []string) {
		for _, s := range subs {
			if !seen[s] {
				seen[s] = true
				result = append(result, s)
			}
		}
	}

	if recipe != nil {
		if subs, ok := recipe.Substitutions[ingredient]; ok {
			add(subs)
		}
	}

	normalized := strings.ToLower(ingredient)
	for _, e := range pantryTable {
		if strings.Contains(normalized, e.name) || strings.Contains(e.name, normalized) {
			add(e.substitutes)
		}
	}

	if len(result) > maxSuggestions {
		result = result[:maxSuggestions]
	}
	return result
}
