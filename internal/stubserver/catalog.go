package stubserver

import (
	"sort"
	"strings"

	"github.com/fridgechef/recipe-client/internal/entity"
)

// defaultCatalog is a small sample of the backend's dataset, kept in
// the same raw form (capitalized keys, stringified ingredient lists).
var defaultCatalog = []entity.Recipe{
	{
		Title:              "Tomato Basil Pasta",
		Ingredients:        "['8 oz pasta', '4 ripe tomatoes', '1 bunch basil', '2 tbsp olive oil', '2 cloves garlic']",
		Instructions:       "Boil the pasta until al dente. Simmer chopped tomatoes with garlic in olive oil, toss with the pasta and torn basil.",
		ImageName:          "tomato-basil-pasta",
		CleanedIngredients: "['pasta', 'tomato', 'basil', 'olive oil', 'garlic']",
	},
	{
		Title:              "Mushroom Omelette",
		Ingredients:        "['3 eggs', '1 cup mushrooms', '1 tbsp butter', 'chives']",
		Instructions:       "Whisk the eggs. Fry the mushrooms in butter, pour the eggs over and fold when set.",
		ImageName:          "mushroom-omelette",
		CleanedIngredients: "['egg', 'mushroom', 'butter', 'chive']",
	},
	{
		Title:              "Mac & Cheese",
		Ingredients:        "['2 cups macaroni', '2 cups cheddar cheese', '2 cups milk', '2 tbsp butter', '2 tbsp flour']",
		Instructions:       "Cook the macaroni. Make a roux with butter and flour, whisk in milk, melt in the cheese and combine.",
		ImageName:          "mac-and-cheese",
		CleanedIngredients: "['macaroni', 'cheddar cheese', 'milk', 'butter', 'flour']",
	},
	{
		Title:              "Chickpea Curry",
		Ingredients:        "['2 cans chickpeas', '1 can coconut milk', '1 onion', '2 tomatoes', 'curry powder', 'rice']",
		Instructions:       "Fry the onion, add curry powder, tomatoes, chickpeas and coconut milk. Simmer and serve over rice.",
		ImageName:          "chickpea-curry",
		CleanedIngredients: "['chickpea', 'coconut milk', 'onion', 'tomato', 'curry powder', 'rice']",
	},
	{
		Title:              "Grilled Chicken Salad",
		Ingredients:        "['2 chicken breasts', '1 head lettuce', '1 cucumber', 'cherry tomatoes', 'olive oil', 'lemon']",
		Instructions:       "Grill the chicken and slice. Toss the vegetables with olive oil and lemon, top with the chicken.",
		ImageName:          "grilled-chicken-salad",
		CleanedIngredients: "['chicken', 'lettuce', 'cucumber', 'tomato', 'olive oil', 'lemon']",
	},
	{
		Title:              "Peanut Noodles",
		Ingredients:        "['8 oz noodles', '3 tbsp peanut butter', '2 tbsp soy sauce', '1 lime', 'scallions']",
		Instructions:       "Cook the noodles. Whisk peanut butter, soy sauce and lime juice into a sauce, toss and top with scallions.",
		ImageName:          "peanut-noodles",
		CleanedIngredients: "['noodle', 'peanut butter', 'soy sauce', 'lime', 'scallion']",
	},
	{
		Title:              "Banana Oat Pancakes",
		Ingredients:        "['2 bananas', '1 cup oats', '2 eggs', '1 tsp cinnamon', 'maple syrup']",
		Instructions:       "Blend bananas, oats and eggs. Fry small pancakes and serve with cinnamon and maple syrup.",
		ImageName:          "banana-oat-pancakes",
		CleanedIngredients: "['banana', 'oat', 'egg', 'cinnamon', 'maple syrup']",
	},
	{
		Title:              "Roasted Vegetable Quinoa",
		Ingredients:        "['1 cup quinoa', '1 zucchini', '1 bell pepper', '1 red onion', 'olive oil', 'thyme']",
		Instructions:       "Roast the chopped vegetables with olive oil and thyme. Cook the quinoa and fold everything together.",
		ImageName:          "roasted-vegetable-quinoa",
		CleanedIngredients: "['quinoa', 'zucchini', 'bell pepper', 'onion', 'olive oil', 'thyme']",
	},
}

// matchRecipe computes which of the requested ingredients appear in the
// recipe's cleaned ingredient list, the same case-insensitive substring
// matching the backend's string-matching fallback uses.
func matchRecipe(recipe entity.Recipe, ingredients []string) entity.RecipeWithMatch {
	cleaned := strings.ToLower(recipe.CleanedIngredients)

	matching := []string{}
	for _, ingredient := range ingredients {
		needle := strings.ToLower(strings.TrimSpace(ingredient))
		if needle == "" {
			continue
		}
		if strings.Contains(cleaned, needle) {
			matching = append(matching, ingredient)
		}
	}

	return entity.RecipeWithMatch{
		Recipe:              recipe,
		MatchingCount:       len(matching),
		MatchingIngredients: matching,
	}
}

// rankByMatch scores every catalog recipe against the ingredient list
// and returns those with at least one match, best first.
func rankByMatch(catalog []entity.Recipe, ingredients []string) []entity.RecipeWithMatch {
	matches := []entity.RecipeWithMatch{}
	for _, recipe := range catalog {
		match := matchRecipe(recipe, ingredients)
		if match.MatchingCount > 0 {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchingCount > matches[j].MatchingCount
	})

	return matches
}

// Ingredient keywords excluded by each dietary preference. Coarse on
// purpose: the stub only has to behave plausibly, not correctly.
var preferenceExclusions = map[string][]string{
	"vegan":      {"chicken", "beef", "pork", "fish", "egg", "milk", "butter", "cheese", "cream", "yogurt", "honey"},
	"vegetarian": {"chicken", "beef", "pork", "fish"},
	"glutenFree": {"flour", "wheat", "bread", "pasta", "macaroni", "noodle"},
	"dairyFree":  {"milk", "butter", "cheese", "cream", "yogurt"},
	"nutAllergy": {"peanut", "almond", "walnut", "cashew", "pecan", "hazelnut"},
}

func containsAny(recipe entity.Recipe, keywords []string) bool {
	cleaned := strings.ToLower(recipe.CleanedIngredients)
	for _, keyword := range keywords {
		if strings.Contains(cleaned, keyword) {
			return true
		}
	}
	return false
}

// allowedByPreferences filters out recipes that violate any preference
// the caller explicitly set to true.
func allowedByPreferences(recipe entity.Recipe, prefs *entity.DietaryPreferences) bool {
	if prefs == nil {
		return true
	}

	checks := []struct {
		flag *bool
		key  string
	}{
		{prefs.Vegan, "vegan"},
		{prefs.Vegetarian, "vegetarian"},
		{prefs.GlutenFree, "glutenFree"},
		{prefs.DairyFree, "dairyFree"},
		{prefs.NutAllergy, "nutAllergy"},
	}

	for _, check := range checks {
		if check.flag != nil && *check.flag && containsAny(recipe, preferenceExclusions[check.key]) {
			return false
		}
	}

	return true
}
