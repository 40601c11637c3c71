package stubserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	log := zap.NewNop()
	return SetupRouter(NewHandler(log), log)
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	return result
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	recorder := doJSON(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeInto[map[string]string](t, recorder)
	assert.Equal(t, "ok", body["status"])
}

func TestListRecipes(t *testing.T) {
	router := newTestRouter()

	t.Run("returns full catalog without filters", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RecipeListResponse](t, recorder)
		assert.Equal(t, len(defaultCatalog), resp.Count)
		assert.Len(t, resp.Recipes, resp.Count)
	})

	t.Run("filters by ingredients", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/?ingredients=egg", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RecipeListResponse](t, recorder)
		require.NotEmpty(t, resp.Recipes)
		for _, recipe := range resp.Recipes {
			assert.Contains(t, recipe.CleanedIngredients, "egg")
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/?limit=2&offset=1", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RecipeListResponse](t, recorder)
		assert.Len(t, resp.Recipes, 2)
		assert.Equal(t, defaultCatalog[1].Title, resp.Recipes[0].Title)
	})

	t.Run("explicit zero limit yields no recipes", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/?limit=0", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RecipeListResponse](t, recorder)
		assert.Empty(t, resp.Recipes)
	})

	t.Run("rejects malformed limit with detail body", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/?limit=lots", nil)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		errBody := decodeInto[response.ErrorResponse](t, recorder)
		assert.Contains(t, errBody.Detail, "limit")
	})
}

func TestGetRecipe(t *testing.T) {
	router := newTestRouter()

	t.Run("returns recipe for escaped title", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/Mac%20&%20Cheese", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		recipe := decodeInto[entity.Recipe](t, recorder)
		assert.Equal(t, "Mac & Cheese", recipe.Title)
	})

	t.Run("unknown title yields 404 with detail", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/recipes/Unknown", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		errBody := decodeInto[response.ErrorResponse](t, recorder)
		assert.Equal(t, "Recipe not found: Unknown", errBody.Detail)
	})
}

func TestRecommend(t *testing.T) {
	router := newTestRouter()

	t.Run("ranks recipes by matching count", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/recommend",
			map[string]any{"ingredients": []string{"tomato", "basil", "garlic"}})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RecommendResponse](t, recorder)
		require.NotEmpty(t, resp.Recommendations)
		assert.Equal(t, "Tomato Basil Pasta", resp.Recommendations[0].Title)
		assert.Equal(t, 3, resp.Recommendations[0].MatchingCount)
		assert.Equal(t, resp.Recommendations[0].MatchingCount, len(resp.Recommendations[0].MatchingIngredients))

		// best-first ordering
		for i := 1; i < len(resp.Recommendations); i++ {
			assert.GreaterOrEqual(t,
				resp.Recommendations[i-1].MatchingCount,
				resp.Recommendations[i].MatchingCount,
			)
		}
	})

	t.Run("rejects empty ingredient list", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/recommend",
			map[string]any{"ingredients": []string{}})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		errBody := decodeInto[response.ErrorResponse](t, recorder)
		assert.Equal(t, "ingredients list cannot be empty", errBody.Detail)
	})
}

func TestRAGRecommend(t *testing.T) {
	router := newTestRouter()

	t.Run("count matches recipes and explanation present by default", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{"ingredients": []string{"tomato"}})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RAGRecommendResponse](t, recorder)
		assert.Equal(t, len(resp.Recipes), resp.Count)
		assert.NotNil(t, resp.Explanation)
		assert.False(t, resp.Metadata.RetrieverUsed)
		assert.False(t, resp.Metadata.LLMUsed)
		assert.NotEmpty(t, resp.Metadata.PipelineStages)
	})

	t.Run("explain false omits explanation", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{"ingredients": []string{"tomato"}, "explain": false})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RAGRecommendResponse](t, recorder)
		assert.Nil(t, resp.Explanation)
	})

	t.Run("top_k caps results", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{"ingredients": []string{"tomato", "olive oil", "egg"}, "top_k": 1})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RAGRecommendResponse](t, recorder)
		assert.Len(t, resp.Recipes, 1)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("vegan preference filters meat and dairy", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{
				"ingredients": []string{"tomato", "olive oil"},
				"preferences": map[string]any{"vegan": true},
			})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RAGRecommendResponse](t, recorder)
		for _, recipe := range resp.Recipes {
			assert.NotContains(t, recipe.CleanedIngredients, "chicken")
			assert.NotContains(t, recipe.CleanedIngredients, "cheese")
		}
	})

	t.Run("excluded ingredients are honored", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{
				"ingredients":          []string{"tomato"},
				"excluded_ingredients": []string{"chickpea"},
			})

		require.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeInto[entity.RAGRecommendResponse](t, recorder)
		for _, recipe := range resp.Recipes {
			assert.NotContains(t, recipe.CleanedIngredients, "chickpea")
		}
	})

	t.Run("rejects empty ingredient list", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/recipes/rag-recommend",
			map[string]any{"ingredients": []string{}})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMatchRecipe(t *testing.T) {
	recipe := entity.Recipe{
		Title:              "Test",
		CleanedIngredients: "['egg', 'flour', 'milk']",
	}

	match := matchRecipe(recipe, []string{"egg", "milk", "saffron"})

	assert.Equal(t, 2, match.MatchingCount)
	assert.Equal(t, []string{"egg", "milk"}, match.MatchingIngredients)
	assert.Equal(t, match.MatchingCount, len(match.MatchingIngredients))
}

func TestAllowedByPreferences(t *testing.T) {
	meaty := entity.Recipe{CleanedIngredients: "['chicken', 'lettuce']"}
	vegan := entity.Recipe{CleanedIngredients: "['quinoa', 'zucchini']"}

	truthy := true
	falsy := false

	assert.True(t, allowedByPreferences(meaty, nil))
	assert.False(t, allowedByPreferences(meaty, &entity.DietaryPreferences{Vegetarian: &truthy}))
	// explicit false is not a restriction
	assert.True(t, allowedByPreferences(meaty, &entity.DietaryPreferences{Vegetarian: &falsy}))
	assert.True(t, allowedByPreferences(vegan, &entity.DietaryPreferences{Vegan: &truthy}))
}
