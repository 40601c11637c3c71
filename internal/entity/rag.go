package entity

// RAGRecommendRequest describes a retrieve-rerank-generate request.
// Optional fields are pointers so that an explicit false or 0 survives
// the boundary defaulting applied by the connector.
type RAGRecommendRequest struct {
	Ingredients         []string            `json:"ingredients"`
	Preferences         *DietaryPreferences `json:"preferences,omitempty"`
	ExcludedIngredients []string            `json:"excluded_ingredients,omitempty"`
	Explain             *bool               `json:"explain,omitempty"`
	TopK                *int                `json:"top_k,omitempty"`
	RetrievalTopK       *int                `json:"retrieval_top_k,omitempty"`
}

// RAGMetadata reports which pipeline stages actually ran. A degraded
// backend may skip the retriever, reranker, or LLM stage.
type RAGMetadata struct {
	RetrievalCount int      `json:"retrieval_count"`
	RerankedCount  int      `json:"reranked_count"`
	PipelineStages []string `json:"pipeline_stages"`
	RetrieverUsed  bool     `json:"retriever_used"`
	RerankerUsed   bool     `json:"reranker_used"`
	LLMUsed        bool     `json:"llm_used"`
}

// RAGRecommendResponse is the pipeline result. Explanation is nil when
// explain was false or generation failed; Count equals len(Recipes).
type RAGRecommendResponse struct {
	Recipes     []RecipeWithMatch `json:"recipes"`
	Explanation *string           `json:"explanation,omitempty"`
	Metadata    RAGMetadata       `json:"metadata"`
	Count       int               `json:"count"`
}
