// Package pipeline sequences the two generation stages: extract the
// ContentDNA once, then fan out across the requested platforms.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/source"
)

// Result is the outcome for one platform: either a draft with its
// validation, or the error that prevented it. Never both.
type Result struct {
	Draft      *platform.Draft
	Validation platform.ValidationResult
	Err        error
}

// Orchestrator runs the pipeline. It holds no mutable state between
// runs; everything flows through arguments and the injected
// dependencies.
type Orchestrator struct {
	analyzer *analyzer.Analyzer
	adapters map[string]*platform.Adapter
}

// Config holds configuration for the orchestrator.
type Config struct {
	Analyzer *analyzer.Analyzer
	Adapters []*platform.Adapter
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	adapters := make(map[string]*platform.Adapter, len(cfg.Adapters))
	for _, a := range cfg.Adapters {
		adapters[a.Rules().ID] = a
	}
	return &Orchestrator{
		analyzer: cfg.Analyzer,
		adapters: adapters,
	}
}

// Run extracts the document's DNA exactly once, then generates and
// validates a draft per requested platform. A failure on one platform is
// recorded in its Result and does not abort the others; an extraction
// failure aborts the whole run before any adapter is invoked. Requested
// platforms are never silently dropped: every ID appears in the result.
func (o *Orchestrator) Run(ctx context.Context, doc *source.Document, platformIDs []string) (map[string]Result, error) {
	if len(platformIDs) == 0 {
		platformIDs = platform.IDs()
	}

	dna, err := o.analyzer.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extract content dna: %w", err)
	}

	results := make(map[string]Result, len(platformIDs))
	for _, id := range platformIDs {
		// A run may be aborted between platform calls; results already
		// produced stay valid.
		if ctx.Err() != nil {
			results[id] = Result{Err: ctx.Err()}
			continue
		}

		adapter, ok := o.adapters[id]
		if !ok {
			results[id] = Result{Err: fmt.Errorf("unknown platform %q", id)}
			continue
		}

		draft, err := adapter.Generate(ctx, dna)
		if err != nil {
			slog.Error("draft generation failed", "platform", id, "error", err)
			results[id] = Result{Err: err}
			continue
		}

		results[id] = Result{
			Draft:      draft,
			Validation: platform.Validate(draft, adapter.Rules()),
		}
	}

	return results, nil
}
