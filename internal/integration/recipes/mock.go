package recipes

import (
	"context"

	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector serves canned data without touching the network, for
// developing against an absent backend.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

var mockRecipes = []entity.Recipe{
	{
		Title:              "Tomato Basil Pasta",
		Ingredients:        "['pasta', 'tomatoes', 'basil', 'olive oil', 'garlic']",
		Instructions:       "Boil the pasta. Simmer tomatoes with garlic, toss with basil.",
		ImageName:          "tomato-basil-pasta",
		CleanedIngredients: "['pasta', 'tomato', 'basil', 'olive oil', 'garlic']",
	},
	{
		Title:              "Mushroom Omelette",
		Ingredients:        "['eggs', 'mushrooms', 'butter', 'chives']",
		Instructions:       "Whisk the eggs, fry the mushrooms, fold together.",
		ImageName:          "mushroom-omelette",
		CleanedIngredients: "['egg', 'mushroom', 'butter', 'chive']",
	},
}

func (m *MockConnector) List(ctx context.Context, params *entity.ListParams) (*entity.RecipeListResponse, error) {
	ctxzap.Info(ctx, "[MOCK] listing recipes")

	return &entity.RecipeListResponse{
		Recipes: mockRecipes,
		Count:   len(mockRecipes),
	}, nil
}

func (m *MockConnector) GetByTitle(ctx context.Context, title string) (*entity.Recipe, error) {
	ctxzap.Info(ctx, "[MOCK] fetching recipe", zap.String("title", title))

	recipe := mockRecipes[0]
	recipe.Title = title
	return &recipe, nil
}

func (m *MockConnector) Recommend(ctx context.Context, ingredients []string) (*entity.RecommendResponse, error) {
	ctxzap.Info(ctx, "[MOCK] requesting recommendations", zap.Strings("ingredients", ingredients))

	matches := make([]entity.RecipeWithMatch, 0, len(mockRecipes))
	for _, recipe := range mockRecipes {
		matches = append(matches, entity.RecipeWithMatch{
			Recipe:              recipe,
			MatchingCount:       len(ingredients),
			MatchingIngredients: ingredients,
		})
	}

	return &entity.RecommendResponse{
		Recommendations: matches,
		Count:           len(matches),
		UserIngredients: ingredients,
		SearchMethod:    "string_matching",
	}, nil
}

func (m *MockConnector) RAGRecommend(ctx context.Context, req *entity.RAGRecommendRequest) (*entity.RAGRecommendResponse, error) {
	ctxzap.Info(ctx, "[MOCK] requesting RAG recommendations",
		zap.Strings("ingredients", req.Ingredients),
	)

	matches := []entity.RecipeWithMatch{
		{
			Recipe:              mockRecipes[0],
			MatchingCount:       len(req.Ingredients),
			MatchingIngredients: req.Ingredients,
		},
	}

	resp := &entity.RAGRecommendResponse{
		Recipes: matches,
		Metadata: entity.RAGMetadata{
			RetrievalCount: len(matches),
			RerankedCount:  0,
			PipelineStages: []string{"mock"},
		},
		Count: len(matches),
	}

	if req.Explain == nil || *req.Explain {
		explanation := "Mock explanation: these recipes use most of your ingredients."
		resp.Explanation = &explanation
	}

	return resp, nil
}

func (m *MockConnector) Health(ctx context.Context) bool {
	ctxzap.Info(ctx, "[MOCK] health check")
	return true
}
