package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clean the generation cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	RunE:  runCacheStats,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache entries",
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openCache(ctx context.Context) (*cache.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	store, err := cache.Open(ctx, cfg.CachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open cache: %w", err)
	}
	return store, cfg, nil
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, cfg, err := openCache(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read cache stats: %w", err)
	}

	fmt.Printf("Cache: %s\n", cfg.CachePath)
	fmt.Printf("  Entries: %d\n", stats.Total)
	fmt.Printf("  Expired: %d\n", stats.Expired)
	return nil
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, _, err := openCache(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.PurgeExpired(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d expired entries\n", removed)
	return nil
}
