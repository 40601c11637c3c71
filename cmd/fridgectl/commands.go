package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fridgechef/recipe-client/internal/entity"
	"github.com/fridgechef/recipe-client/internal/pkg/logger"
	"github.com/urfave/cli/v3"
)

// printJSON writes the result to stdout the way the frontend would
// receive it.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List recipes, optionally filtered by ingredients",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "ingredient",
				Usage: "Ingredient to filter by (repeatable)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of recipes to return",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Number of recipes to skip",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, client, err := buildClient(ctx)
			if err != nil {
				return err
			}
			ctx = logger.WithAction(ctx, "list")

			params := &entity.ListParams{
				Ingredients: cmd.StringSlice("ingredient"),
			}
			if cmd.IsSet("limit") {
				limit := int(cmd.Int("limit"))
				params.Limit = &limit
			}
			if cmd.IsSet("offset") {
				offset := int(cmd.Int("offset"))
				params.Offset = &offset
			}

			resp, err := client.List(ctx, params)
			if err != nil {
				return describeError(err)
			}

			return printJSON(resp)
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a single recipe by its exact title",
		ArgsUsage: "<title>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			title := cmd.Args().First()
			if title == "" {
				return errors.New("a recipe title is required")
			}

			ctx, client, err := buildClient(ctx)
			if err != nil {
				return err
			}
			ctx = logger.WithAction(ctx, "get")

			recipe, err := client.GetByTitle(ctx, title)
			if err != nil {
				return describeError(err)
			}

			return printJSON(recipe)
		},
	}
}

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:      "recommend",
		Usage:     "Get keyword-matched recommendations for the given ingredients",
		ArgsUsage: "<ingredient>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ingredients := cmd.Args().Slice()
			if len(ingredients) == 0 {
				return errors.New("at least one ingredient is required")
			}

			ctx, client, err := buildClient(ctx)
			if err != nil {
				return err
			}
			ctx = logger.WithAction(ctx, "recommend")

			resp, err := client.Recommend(ctx, ingredients)
			if err != nil {
				return describeError(err)
			}

			return printJSON(resp)
		},
	}
}

func ragCmd() *cli.Command {
	return &cli.Command{
		Name:      "rag",
		Usage:     "Run the retrieve-rerank-generate recommendation pipeline",
		ArgsUsage: "<ingredient>...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Ingredient to exclude from results (repeatable)",
			},
			&cli.BoolFlag{Name: "vegan", Usage: "Only vegan recipes"},
			&cli.BoolFlag{Name: "vegetarian", Usage: "Only vegetarian recipes"},
			&cli.BoolFlag{Name: "gluten-free", Usage: "Only gluten-free recipes"},
			&cli.BoolFlag{Name: "dairy-free", Usage: "Only dairy-free recipes"},
			&cli.BoolFlag{Name: "nut-allergy", Usage: "Exclude recipes containing nuts"},
			&cli.BoolFlag{
				Name:  "no-explain",
				Usage: "Skip the generated explanation",
			},
			&cli.IntFlag{
				Name:  "top-k",
				Usage: "Number of recipes to return (default 10)",
			},
			&cli.IntFlag{
				Name:  "retrieval-top-k",
				Usage: "Number of candidates to retrieve before reranking (default 50)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ingredients := cmd.Args().Slice()
			if len(ingredients) == 0 {
				return errors.New("at least one ingredient is required")
			}

			req := &entity.RAGRecommendRequest{
				Ingredients:         ingredients,
				ExcludedIngredients: cmd.StringSlice("exclude"),
				Preferences:         preferencesFromFlags(cmd),
			}
			if cmd.Bool("no-explain") {
				explain := false
				req.Explain = &explain
			}
			if cmd.IsSet("top-k") {
				topK := int(cmd.Int("top-k"))
				req.TopK = &topK
			}
			if cmd.IsSet("retrieval-top-k") {
				retrievalTopK := int(cmd.Int("retrieval-top-k"))
				req.RetrievalTopK = &retrievalTopK
			}

			ctx, client, err := buildClient(ctx)
			if err != nil {
				return err
			}
			ctx = logger.WithAction(ctx, "rag-recommend")

			resp, err := client.RAGRecommend(ctx, req)
			if err != nil {
				return describeError(err)
			}

			return printJSON(resp)
		},
	}
}

// preferencesFromFlags builds a DietaryPreferences from the flags that
// were actually set; returns nil when none were, so the request omits
// the field entirely.
func preferencesFromFlags(cmd *cli.Command) *entity.DietaryPreferences {
	prefs := &entity.DietaryPreferences{}
	set := false

	assign := func(name string, field **bool) {
		if cmd.Bool(name) {
			value := true
			*field = &value
			set = true
		}
	}

	assign("vegan", &prefs.Vegan)
	assign("vegetarian", &prefs.Vegetarian)
	assign("gluten-free", &prefs.GlutenFree)
	assign("dairy-free", &prefs.DairyFree)
	assign("nut-allergy", &prefs.NutAllergy)

	if !set {
		return nil
	}
	return prefs
}

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Check whether the backend is reachable and healthy",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, client, err := buildClient(ctx)
			if err != nil {
				return err
			}
			ctx = logger.WithAction(ctx, "health")

			if client.Health(ctx) {
				fmt.Println("backend is healthy")
				return nil
			}

			return errors.New("backend is unhealthy or unreachable")
		},
	}
}
