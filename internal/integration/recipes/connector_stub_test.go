package recipes

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/stubserver"
	pkghttp "github.com/fridgechef/recipe-client/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Runs every operation against the in-process stub server, exercising
// the full wire contract end to end.
func TestConnectorAgainstStubServer(t *testing.T) {
	log := zap.NewNop()
	server := httptest.NewServer(stubserver.SetupRouter(stubserver.NewHandler(log), log))
	defer server.Close()

	connector := newTestConnector(server.URL)
	ctx := context.Background()

	t.Run("list all", func(t *testing.T) {
		resp, err := connector.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, len(resp.Recipes), resp.Count)
		assert.NotEmpty(t, resp.Recipes)
	})

	t.Run("list filtered and paged", func(t *testing.T) {
		resp, err := connector.List(ctx, &entity.ListParams{
			Ingredients: []string{"egg"},
			Limit:       intPtr(1),
		})
		require.NoError(t, err)
		assert.Len(t, resp.Recipes, 1)
	})

	t.Run("get by title round-trips reserved characters", func(t *testing.T) {
		recipe, err := connector.GetByTitle(ctx, "Mac & Cheese")
		require.NoError(t, err)
		assert.Equal(t, "Mac & Cheese", recipe.Title)
	})

	t.Run("get unknown title yields 404 APIError", func(t *testing.T) {
		_, err := connector.GetByTitle(ctx, "Imaginary Stew")
		apiErr := &pkghttp.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Contains(t, apiErr.Message, "Imaginary Stew")
	})

	t.Run("recommend ranks by matching count", func(t *testing.T) {
		resp, err := connector.Recommend(ctx, []string{"tomato", "basil"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Recommendations)
		assert.Equal(t, "Tomato Basil Pasta", resp.Recommendations[0].Title)
		assert.Equal(t, len(resp.Recommendations[0].MatchingIngredients), resp.Recommendations[0].MatchingCount)
		assert.Equal(t, "string_matching", resp.SearchMethod)
	})

	t.Run("empty recommend is rejected with normalized error", func(t *testing.T) {
		_, err := connector.Recommend(ctx, []string{})
		apiErr := &pkghttp.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, "ingredients list cannot be empty", apiErr.Message)
	})

	t.Run("rag with preferences and exclusions", func(t *testing.T) {
		resp, err := connector.RAGRecommend(ctx, &entity.RAGRecommendRequest{
			Ingredients: []string{"tomato", "olive oil"},
			Preferences: &entity.DietaryPreferences{
				Vegan: boolPtr(true),
			},
			ExcludedIngredients: []string{"chickpea"},
		})
		require.NoError(t, err)
		assert.Equal(t, len(resp.Recipes), resp.Count)
		for _, recipe := range resp.Recipes {
			assert.NotContains(t, recipe.CleanedIngredients, "chicken")
			assert.NotContains(t, recipe.CleanedIngredients, "chickpea")
		}
		require.NotNil(t, resp.Explanation)
		assert.NotEmpty(t, resp.Metadata.PipelineStages)
	})

	t.Run("rag without explanation", func(t *testing.T) {
		resp, err := connector.RAGRecommend(ctx, &entity.RAGRecommendRequest{
			Ingredients: []string{"tomato"},
			Explain:     boolPtr(false),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Explanation)
	})

	t.Run("health", func(t *testing.T) {
		assert.True(t, connector.Health(ctx))
	})
}
