package stubserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(handler *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(Logger(logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	// Health check lives outside the /api prefix, like the real backend
	r.Get("/health", handler.health)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/", handler.listRecipes)
		r.Post("/recommend", handler.recommend)
		r.Post("/rag-recommend", handler.ragRecommend)
		r.Get("/{title}", handler.getRecipe)
	})

	return r
}
