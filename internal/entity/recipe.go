package entity

// Recipe mirrors the backend's recipe document. The capitalized JSON
// keys and the stringified ingredient lists come from the source
// dataset; this layer passes them through without parsing.
type Recipe struct {
	Title              string `json:"Title"`
	Ingredients        string `json:"Ingredients"`
	Instructions       string `json:"Instructions,omitempty"`
	ImageName          string `json:"Image_Name"`
	CleanedIngredients string `json:"Cleaned_Ingredients"`
}

// RecipeWithMatch is a Recipe annotated with how many of the requested
// ingredients it contains. MatchingCount always equals
// len(MatchingIngredients).
type RecipeWithMatch struct {
	Recipe
	MatchingCount       int      `json:"matchingCount"`
	MatchingIngredients []string `json:"matchingIngredients"`
}

// DietaryPreferences carries five independent optional flags. A nil
// field means "unspecified", which is distinct from an explicit false.
type DietaryPreferences struct {
	Vegan      *bool `json:"vegan,omitempty"`
	Vegetarian *bool `json:"vegetarian,omitempty"`
	GlutenFree *bool `json:"glutenFree,omitempty"`
	DairyFree  *bool `json:"dairyFree,omitempty"`
	NutAllergy *bool `json:"nutAllergy,omitempty"`
}

// ListParams filters the recipe listing. Nil/empty fields are omitted
// from the query string entirely.
type ListParams struct {
	Ingredients []string
	Limit       *int
	Offset      *int
}

// RecipeListResponse is the envelope returned by the listing endpoint.
type RecipeListResponse struct {
	Recipes []Recipe `json:"recipes"`
	Count   int      `json:"count"`
}

// RecommendResponse is returned by the keyword recommendation endpoint.
type RecommendResponse struct {
	Recommendations []RecipeWithMatch `json:"recommendations"`
	Count           int               `json:"count"`
	UserIngredients []string          `json:"userIngredients"`
	SearchMethod    string            `json:"search_method"`
}
