package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fridgechef/recipe-client/internal/config"
	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/integration/recipes"
	"github.com/fridgechef/recipe-client/internal/pkg/logger"
	pkghttp "github.com/fridgechef/recipe-client/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/urfave/cli/v3"
)

// recipesClient is the surface the commands need; satisfied by both the
// real connector and the mock.
type recipesClient interface {
	List(ctx context.Context, params *entity.ListParams) (*entity.RecipeListResponse, error)
	GetByTitle(ctx context.Context, title string) (*entity.Recipe, error)
	Recommend(ctx context.Context, ingredients []string) (*entity.RecommendResponse, error)
	RAGRecommend(ctx context.Context, req *entity.RAGRecommendRequest) (*entity.RAGRecommendResponse, error)
	Health(ctx context.Context) bool
}

func main() {
	cmd := &cli.Command{
		Name:  "fridgectl",
		Usage: "Query the recipe backend from the command line",
		Commands: []*cli.Command{
			listCmd(),
			getCmd(),
			recommendCmd(),
			ragCmd(),
			healthCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// buildClient assembles config, logger, and connector, and returns a
// context carrying the logger for the connector's ctxzap calls.
func buildClient(ctx context.Context) (context.Context, recipesClient, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ctx, nil, fmt.Errorf("load configuration: %w", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return ctx, nil, fmt.Errorf("setup logger: %w", err)
	}

	ctx = ctxzap.ToContext(ctx, zl)

	if cfg.EnableMocks {
		return ctx, recipes.NewMockConnector(zl), nil
	}
	return ctx, recipes.NewConnector(cfg.RecipesCfg, zl), nil
}

// describeError turns an *APIError into an operator-friendly message,
// distinguishing an unreachable backend from a server-side rejection.
func describeError(err error) error {
	var apiErr *pkghttp.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Unreachable() {
			return fmt.Errorf("backend unreachable: %s", apiErr.Message)
		}
		return fmt.Errorf("backend rejected the request (HTTP %d): %s", apiErr.Status, apiErr.Message)
	}
	return err
}
