package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Handler emulates the recipe backend's wire contract against an
// in-memory catalog, including its error body shape, so the client and
// the frontend can be developed without the real service.
type Handler struct {
	catalog []entity.Recipe
	logger  *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		catalog: defaultCatalog,
		logger:  logger,
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var ingredients []string
	if raw := query.Get("ingredients"); raw != "" {
		ingredients = strings.Split(raw, ",")
	}

	limit := len(h.catalog)
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, fmt.Sprintf("limit must be a non-negative integer, got %q", raw))
			return
		}
		limit = parsed
	}

	offset := 0
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, fmt.Sprintf("offset must be a non-negative integer, got %q", raw))
			return
		}
		offset = parsed
	}

	recipes := h.catalog
	if len(ingredients) > 0 {
		recipes = []entity.Recipe{}
		for _, recipe := range h.catalog {
			if matchRecipe(recipe, ingredients).MatchingCount > 0 {
				recipes = append(recipes, recipe)
			}
		}
	}

	if offset > len(recipes) {
		offset = len(recipes)
	}
	recipes = recipes[offset:]
	if limit < len(recipes) {
		recipes = recipes[:limit]
	}

	response.Success(w, entity.RecipeListResponse{
		Recipes: recipes,
		Count:   len(recipes),
	})
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if unescaped, err := url.PathUnescape(title); err == nil {
		title = unescaped
	}

	for _, recipe := range h.catalog {
		if strings.EqualFold(recipe.Title, title) {
			response.Success(w, recipe)
			return
		}
	}

	ctxzap.Debug(r.Context(), "recipe not found", zap.String("title", title))
	response.Error(w, http.StatusNotFound, fmt.Sprintf("Recipe not found: %s", title))
}

type recommendRequest struct {
	Ingredients []string `json:"ingredients"`
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Ingredients) == 0 {
		response.Error(w, http.StatusBadRequest, "ingredients list cannot be empty")
		return
	}

	matches := rankByMatch(h.catalog, req.Ingredients)

	response.Success(w, entity.RecommendResponse{
		Recommendations: matches,
		Count:           len(matches),
		UserIngredients: req.Ingredients,
		SearchMethod:    "string_matching",
	})
}

func (h *Handler) ragRecommend(w http.ResponseWriter, r *http.Request) {
	var req entity.RAGRecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Ingredients) == 0 {
		response.Error(w, http.StatusBadRequest, "ingredients list cannot be empty")
		return
	}

	// Server-side defaults mirror the real backend, for callers that
	// talk to the stub directly.
	explain := true
	if req.Explain != nil {
		explain = *req.Explain
	}
	topK := 10
	if req.TopK != nil {
		topK = *req.TopK
	}
	retrievalTopK := 50
	if req.RetrievalTopK != nil {
		retrievalTopK = *req.RetrievalTopK
	}

	candidates := rankByMatch(h.catalog, req.Ingredients)
	if retrievalTopK < len(candidates) {
		candidates = candidates[:retrievalTopK]
	}
	retrievalCount := len(candidates)

	filtered := []entity.RecipeWithMatch{}
	for _, candidate := range candidates {
		if isExcluded(candidate.Recipe, req.ExcludedIngredients) {
			continue
		}
		if !allowedByPreferences(candidate.Recipe, req.Preferences) {
			continue
		}
		filtered = append(filtered, candidate)
	}

	if topK < len(filtered) {
		filtered = filtered[:topK]
	}

	resp := entity.RAGRecommendResponse{
		Recipes: filtered,
		Metadata: entity.RAGMetadata{
			RetrievalCount: retrievalCount,
			RerankedCount:  0,
			PipelineStages: []string{"string_matching", "preference_filtering"},
			RetrieverUsed:  false,
			RerankerUsed:   false,
			LLMUsed:        false,
		},
		Count: len(filtered),
	}

	if explain {
		explanation := fmt.Sprintf(
			"Found %d recipes matching your %d ingredients using string matching.",
			len(filtered), len(req.Ingredients),
		)
		resp.Explanation = &explanation
	}

	ctxzap.Debug(r.Context(), "RAG recommendation served",
		zap.Int("retrieved", retrievalCount),
		zap.Int("returned", len(filtered)),
		zap.Bool("explain", explain),
	)

	response.Success(w, resp)
}

func isExcluded(recipe entity.Recipe, excluded []string) bool {
	cleaned := strings.ToLower(recipe.CleanedIngredients)
	for _, ingredient := range excluded {
		needle := strings.ToLower(strings.TrimSpace(ingredient))
		if needle != "" && strings.Contains(cleaned, needle) {
			return true
		}
	}
	return false
}
