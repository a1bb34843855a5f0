package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/srijanshukla18/global-publish/internal/app"
	"github.com/srijanshukla18/global-publish/internal/config"
	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/source"
)

var (
	generateSource    string
	generatePlatforms []string
	generateOutput    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate platform drafts from a source document",
	Long: `Generate adapted drafts for one or more platforms from a markdown
source document. Repeated runs over an unchanged document are served
from the cache.

Examples:
  globalpublish generate --source post.md                       # All platforms
  globalpublish generate --source post.md --platforms hackernews,twitter`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSource, "source", "", "Source markdown document (required)")
	generateCmd.Flags().StringSliceVar(&generatePlatforms, "platforms", nil, "Platforms to generate for (default: all)")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Output directory (overrides OUTPUT_DIR)")
	generateCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if generateOutput != "" {
		cfg.OutputDir = generateOutput
	}

	if err := cfg.ValidateForGenerate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	doc, err := source.Load(generateSource)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	slog.Info("generating drafts",
		"source", doc.Path,
		"title", doc.Title,
		"fingerprint", doc.Fingerprint[:8],
	)

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	results, err := a.Orchestrator.Run(ctx, doc, generatePlatforms)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	failed := 0
	for _, id := range ids {
		res := results[id]
		fmt.Printf("=== %s ===\n", id)

		if res.Err != nil {
			failed++
			fmt.Printf("  FAILED: %v\n\n", res.Err)
			continue
		}

		path := filepath.Join(cfg.OutputDir, id+".json")
		payload, err := json.MarshalIndent(res.Draft, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal draft for %s: %w", id, err)
		}
		if err := os.WriteFile(path, payload, 0644); err != nil {
			return fmt.Errorf("write draft for %s: %w", id, err)
		}

		fmt.Printf("  Draft: %s\n", path)
		printValidation(res.Validation)

		if adapter, ok := a.Adapters[id]; ok {
			s := a.Advisor.Suggest(adapter.Rules())
			if s.CurrentIsGood {
				fmt.Printf("  Timing: now is a %s window\n", s.CurrentLabel)
			} else if s.NextWindow != "" {
				fmt.Printf("  Timing: next good window %s\n", s.NextWindow)
			}
		}
		fmt.Println()
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d platforms failed", failed, len(results))
	}
	return nil
}

func printValidation(v platform.ValidationResult) {
	if v.IsValid {
		fmt.Println("  Validation: OK")
	} else {
		fmt.Println("  Validation: FAILED")
	}
	for _, e := range v.Errors {
		fmt.Printf("    error: %s\n", e)
	}
	for _, w := range v.Warnings {
		fmt.Printf("    warning: %s\n", w)
	}
	for _, s := range v.Suggestions {
		fmt.Printf("    suggestion: %s\n", s)
	}
}
