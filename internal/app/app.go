package app

import (
	"context"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/config"
	"github.com/srijanshukla18/global-publish/internal/llm"
	"github.com/srijanshukla18/global-publish/internal/pipeline"
	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/timing"
)

// App is the main application container holding all dependencies.
type App struct {
	Config       *config.Config
	Cache        *cache.Store
	Client       llm.Client
	Analyzer     *analyzer.Analyzer
	Adapters     map[string]*platform.Adapter
	Orchestrator *pipeline.Orchestrator
	Advisor      *timing.Advisor
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Open the cache; migrations run on open.
	store, err := cache.Open(ctx, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	client := llm.NewClaudeClient(llm.ClaudeConfig{
		APIKey:     cfg.AnthropicAPIKey,
		Model:      cfg.Model,
		Timeout:    cfg.RequestTimeout,
		MaxRetries: cfg.MaxRetries,
	})

	anlz := analyzer.New(analyzer.Config{
		Client: client,
		Cache:  store,
		TTL:    cfg.AnalysisTTL,
	})

	// One adapter per registered platform, all sharing the client and cache.
	adapters := make(map[string]*platform.Adapter)
	adapterList := make([]*platform.Adapter, 0, len(platform.IDs()))
	for _, rules := range platform.All() {
		a := platform.NewAdapter(platform.AdapterConfig{
			Rules:  rules,
			Client: client,
			Cache:  store,
			TTL:    cfg.DraftTTL,
		})
		adapters[rules.ID] = a
		adapterList = append(adapterList, a)
	}

	return &App{
		Config:   cfg,
		Cache:    store,
		Client:   client,
		Analyzer: anlz,
		Adapters: adapters,
		Orchestrator: pipeline.New(pipeline.Config{
			Analyzer: anlz,
			Adapters: adapterList,
		}),
		Advisor: timing.NewAdvisor(),
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Cache != nil {
		return a.Cache.Close()
	}
	return nil
}
