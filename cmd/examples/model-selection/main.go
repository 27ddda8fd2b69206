// ABOUTME: Demonstrates constraint-based model selection against the live catalog
// ABOUTME: Shows fluent requirement chains, ranking strategies, and graceful degradation

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
	catalogDomain "github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/fetchers"
	"github.com/estiens/open-router-enhanced-sub001/pkg/config"
	"github.com/estiens/open-router-enhanced-sub001/pkg/selector"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	fetcher := fetchers.NewOpenRouterFetcherWithBaseURL(cfg.APIKey, cfg.BaseURL)
	cat := catalog.New(fetcher,
		catalog.WithTTL(cfg.CatalogTTL),
		catalog.WithLogger(logger),
	)

	ctx := context.Background()
	if err := cat.Refresh(ctx); err != nil {
		log.Fatalf("Failed to fetch model catalog: %v", err)
	}

	// Cheapest function-calling model under a cost ceiling.
	model, err := selector.New(cat).
		Require(catalogDomain.CapabilityFunctionCalling).
		WithinBudget(0.01).
		OptimizeFor(selector.StrategyCost).
		Choose(ctx)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	if model == "" {
		fmt.Println("No model satisfies the requirements")
		os.Exit(1)
	}
	fmt.Printf("Cheapest function-calling model: %s\n", model)

	// Newest vision model with a large context window, degrading
	// gracefully when the full requirement set is unsatisfiable.
	model, err = selector.New(cat).
		Require(catalogDomain.CapabilityVision).
		MinContext(200_000).
		OptimizeFor(selector.StrategyLatest).
		ChooseWithFallback(ctx)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	fmt.Printf("Newest large-context vision model (with fallback): %s\n", model)

	// Ranked shortlist for manual review.
	candidates, err := selector.New(cat).
		Require(catalogDomain.CapabilityStructuredOutputs).
		OptimizeFor(selector.StrategyContext).
		ChooseWithFallbacks(ctx, 5)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	fmt.Println("Top structured-output models by context window:")
	for i, id := range candidates {
		fmt.Printf("  %d. %s\n", i+1, id)
	}

	// Cost estimate for the winner.
	estimator := selector.NewEstimator(cat)
	cost, err := estimator.Estimate(ctx, model, 1000, 500)
	if err != nil {
		log.Fatalf("Estimate failed: %v", err)
	}
	fmt.Printf("Estimated cost for 1000 in / 500 out tokens on %s: $%.6f\n", model, cost)
}
