package recipes

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fridgechef/recipe-client/internal/config"
	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/integration/common"
	pkghttp "github.com/fridgechef/recipe-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// RAG request defaults applied at the boundary, so the wire payload
// always carries concrete values for these three fields.
const (
	defaultExplain       = true
	defaultTopK          = 10
	defaultRetrievalTopK = 50
)

// Connector is the typed client for the recipe backend.
type Connector struct {
	config    config.RecipesConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.RecipesConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.BaseURL, cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// List fetches recipes, optionally filtered by ingredients and paged by
// limit/offset. Absent fields are omitted from the query entirely; the
// ingredient list is sent as one comma-joined value.
func (c *Connector) List(ctx context.Context, params *entity.ListParams) (*entity.RecipeListResponse, error) {
	query := url.Values{}
	if params != nil {
		if len(params.Ingredients) > 0 {
			query.Set("ingredients", strings.Join(params.Ingredients, ","))
		}
		if params.Limit != nil {
			query.Set("limit", strconv.Itoa(*params.Limit))
		}
		if params.Offset != nil {
			query.Set("offset", strconv.Itoa(*params.Offset))
		}
	}

	ctxzap.Debug(ctx, "listing recipes", zap.String("query", query.Encode()))

	var resp entity.RecipeListResponse
	if err := c.connector.DoRequest(ctx, http.MethodGet, "/recipes/", query, nil, &resp); err != nil {
		return nil, err
	}

	ctxzap.Debug(ctx, "recipes listed", zap.Int("count", resp.Count))

	return &resp, nil
}

// GetByTitle fetches a single recipe. The title may contain characters
// that are unsafe in a path segment, so it is percent-encoded.
func (c *Connector) GetByTitle(ctx context.Context, title string) (*entity.Recipe, error) {
	ctxzap.Debug(ctx, "fetching recipe", zap.String("title", title))

	var resp entity.Recipe
	endpoint := "/recipes/" + url.PathEscape(title)
	if err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

type recommendPayload struct {
	Ingredients []string `json:"ingredients"`
}

// Recommend asks the backend for keyword-matched recommendations. No
// defaults are applied; the ingredient list is sent as given.
func (c *Connector) Recommend(ctx context.Context, ingredients []string) (*entity.RecommendResponse, error) {
	ctxzap.Debug(ctx, "requesting recommendations", zap.Int("ingredient_count", len(ingredients)))

	var resp entity.RecommendResponse
	body := recommendPayload{Ingredients: ingredients}
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/recipes/recommend", nil, body, &resp); err != nil {
		return nil, err
	}

	ctxzap.Debug(ctx, "recommendations received",
		zap.Int("count", resp.Count),
		zap.String("search_method", resp.SearchMethod),
	)

	return &resp, nil
}

// ragRecommendPayload is the wire form of a RAG request: the three
// defaulted fields are concrete so the backend always receives them.
type ragRecommendPayload struct {
	Ingredients         []string                   `json:"ingredients"`
	Preferences         *entity.DietaryPreferences `json:"preferences,omitempty"`
	ExcludedIngredients []string                   `json:"excluded_ingredients,omitempty"`
	Explain             bool                       `json:"explain"`
	TopK                int                        `json:"top_k"`
	RetrievalTopK       int                        `json:"retrieval_top_k"`
}

// RAGRecommend runs the retrieve-rerank-generate pipeline. Unset
// explain/top_k/retrieval_top_k fields are defaulted here, at the
// boundary; explicit false and 0 values are preserved.
func (c *Connector) RAGRecommend(ctx context.Context, req *entity.RAGRecommendRequest) (*entity.RAGRecommendResponse, error) {
	payload := ragRecommendPayload{
		Ingredients:         req.Ingredients,
		Preferences:         req.Preferences,
		ExcludedIngredients: req.ExcludedIngredients,
		Explain:             defaultExplain,
		TopK:                defaultTopK,
		RetrievalTopK:       defaultRetrievalTopK,
	}
	if req.Explain != nil {
		payload.Explain = *req.Explain
	}
	if req.TopK != nil {
		payload.TopK = *req.TopK
	}
	if req.RetrievalTopK != nil {
		payload.RetrievalTopK = *req.RetrievalTopK
	}

	ctxzap.Debug(ctx, "requesting RAG recommendations",
		zap.Int("ingredient_count", len(req.Ingredients)),
		zap.Bool("explain", payload.Explain),
		zap.Int("top_k", payload.TopK),
		zap.Int("retrieval_top_k", payload.RetrievalTopK),
	)

	var resp entity.RAGRecommendResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, "/recipes/rag-recommend", nil, payload, &resp); err != nil {
		return nil, err
	}

	// The backend guarantees count == len(recipes); a mismatch is worth
	// surfacing in logs but not failing over.
	if resp.Count != len(resp.Recipes) {
		ctxzap.Warn(ctx, "RAG response count mismatch",
			zap.Int("count", resp.Count),
			zap.Int("recipes", len(resp.Recipes)),
		)
	}

	ctxzap.Debug(ctx, "RAG recommendations received",
		zap.Int("count", resp.Count),
		zap.Strings("pipeline_stages", resp.Metadata.PipelineStages),
	)

	return &resp, nil
}

// Health probes the backend's health endpoint. It reports a plain
// boolean and swallows every failure, transport or server side: a
// health check must never raise.
func (c *Connector) Health(ctx context.Context) bool {
	err := c.connector.DoRequest(ctx, http.MethodGet, "", nil, nil, nil, pkghttp.WithURL(c.config.HealthURL))
	if err != nil {
		ctxzap.Debug(ctx, "health check failed", zap.Error(err))
		return false
	}

	return true
}
