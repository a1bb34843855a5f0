package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srijanshukla18/global-publish/internal/app"
	"github.com/srijanshukla18/global-publish/internal/config"
	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/source"
)

var recommendSource string

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank platforms by fit for a source document",
	Long: `Extract the document's content DNA and rank every platform by how
well the content matches its culture. The extraction is cached, so a
later generate run reuses it.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendSource, "source", "", "Source markdown document (required)")
	recommendCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForGenerate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	doc, err := source.Load(recommendSource)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	dna, err := a.Analyzer.Extract(ctx, doc)
	if err != nil {
		return err
	}

	fmt.Printf("Content type: %s\n", dna.ContentType)
	fmt.Printf("Audience: %s\n\n", dna.TargetAudience)

	for _, rec := range platform.Recommend(dna) {
		fmt.Printf("%-12s %-8s %s\n", rec.Platform, strings.ToUpper(rec.Fit), rec.Reason)
	}

	return nil
}
