package pipeline

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/platform"
	"github.com/srijanshukla18/global-publish/internal/source"
)

type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Model() string {
	return "stub-model"
}

const dnaResponse = `{
	"value_proposition": "Cuts Go build times with an incremental cache",
	"problem_solved": "Slow CI builds on large Go repositories",
	"technical_details": ["Go", "content-addressed cache", "CI"],
	"target_audience": "backend engineers",
	"key_metrics": ["builds 4x faster"],
	"unique_aspects": ["no daemon required"],
	"limitations": ["linux only for now"],
	"content_type": "tool_launch"
}`

const cleanDraftResponse = `{
	"title": "Show HN: Incremental build cache for Go",
	"body": "I built a content-addressed build cache for Go projects. It tracks inputs per package and skips compilation when nothing changed, which cut our CI times from 12 minutes to 3. Limitations: linux only for now, and cgo packages are always rebuilt. Source and benchmarks in the repo."
}`

func testStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testAdapter(t *testing.T, store *cache.Store, id string, client *stubClient) *platform.Adapter {
	t.Helper()
	rules, ok := platform.Get(id)
	require.True(t, ok)
	return platform.NewAdapter(platform.AdapterConfig{
		Rules:  rules,
		Client: client,
		Cache:  store,
		TTL:    time.Hour,
	})
}

func testOrchestrator(t *testing.T, analyzerClient *stubClient, adapters ...*platform.Adapter) (*Orchestrator, *cache.Store) {
	t.Helper()
	store := testStore(t)
	return New(Config{
		Analyzer: analyzer.New(analyzer.Config{
			Client: analyzerClient,
			Cache:  store,
			TTL:    time.Hour,
		}),
		Adapters: adapters,
	}), store
}

func TestOrchestrator_PartialFailureIsolation(t *testing.T) {
	store := testStore(t)
	hnClient := &stubClient{response: cleanDraftResponse}
	liClient := &stubClient{response: "this is not a draft"}

	o, _ := testOrchestrator(t, &stubClient{response: dnaResponse},
		testAdapter(t, store, "hackernews", hnClient),
		testAdapter(t, store, "linkedin", liClient),
	)

	doc := source.Parse("# Tool X\n\nSolves slow builds for Go projects using incremental caching.")
	results, err := o.Run(context.Background(), doc, []string{"hackernews", "linkedin"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	hn := results["hackernews"]
	require.NoError(t, hn.Err)
	require.NotNil(t, hn.Draft)
	assert.Equal(t, "hackernews", hn.Draft.PlatformID)

	li := results["linkedin"]
	require.Error(t, li.Err)
	var genErr *platform.GenerationError
	require.ErrorAs(t, li.Err, &genErr)
	assert.Equal(t, "linkedin", genErr.Platform)
	assert.Nil(t, li.Draft)
}

func TestOrchestrator_ExtractionFailureAbortsRun(t *testing.T) {
	store := testStore(t)
	hnClient := &stubClient{response: cleanDraftResponse}
	liClient := &stubClient{response: cleanDraftResponse}

	o, _ := testOrchestrator(t, &stubClient{response: "no json here"},
		testAdapter(t, store, "hackernews", hnClient),
		testAdapter(t, store, "linkedin", liClient),
	)

	doc := source.Parse("# Tool X\n\nSome body.")
	results, err := o.Run(context.Background(), doc, []string{"hackernews", "linkedin"})
	require.Error(t, err)
	assert.Nil(t, results)

	var extErr *analyzer.ExtractionError
	assert.ErrorAs(t, err, &extErr)

	// No adapter may have been invoked.
	assert.Zero(t, hnClient.calls)
	assert.Zero(t, liClient.calls)
}

func TestOrchestrator_UnknownPlatform(t *testing.T) {
	store := testStore(t)
	o, _ := testOrchestrator(t, &stubClient{response: dnaResponse},
		testAdapter(t, store, "hackernews", &stubClient{response: cleanDraftResponse}),
	)

	doc := source.Parse("# Tool X\n\nSome body.")
	results, err := o.Run(context.Background(), doc, []string{"hackernews", "myspace"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results["hackernews"].Err)
	require.Error(t, results["myspace"].Err)
	assert.Contains(t, results["myspace"].Err.Error(), "unknown platform")
}

func TestOrchestrator_DefaultsToAllPlatforms(t *testing.T) {
	store := testStore(t)
	draftClient := &stubClient{response: cleanDraftResponse}

	adapters := make([]*platform.Adapter, 0, len(platform.IDs()))
	for _, id := range platform.IDs() {
		adapters = append(adapters, testAdapter(t, store, id, draftClient))
	}

	o, _ := testOrchestrator(t, &stubClient{response: dnaResponse}, adapters...)

	doc := source.Parse("# Tool X\n\nSome body.")
	results, err := o.Run(context.Background(), doc, nil)
	require.NoError(t, err)
	require.Len(t, results, len(platform.IDs()))
	for _, id := range platform.IDs() {
		assert.Contains(t, results, id)
	}
}

func TestOrchestrator_ForbiddenTermSurfacesAsSingleError(t *testing.T) {
	store := testStore(t)
	hnClient := &stubClient{response: `{
		"title": "Show HN: Revolutionary build cache for Go",
		"body": "I built a content-addressed build cache for Go projects. It tracks inputs per package and skips compilation when nothing changed, which cut our CI times from 12 minutes to 3. Limitations: linux only for now."
	}`}

	analyzerClient := &stubClient{response: dnaResponse}
	o, _ := testOrchestrator(t, analyzerClient,
		testAdapter(t, store, "hackernews", hnClient),
	)

	doc := source.Parse("# Tool X\n\nSolves slow builds for Go projects using incremental caching.")
	results, err := o.Run(context.Background(), doc, []string{"hackernews"})
	require.NoError(t, err)

	res := results["hackernews"]
	require.NoError(t, res.Err)
	require.NotNil(t, res.Draft)

	v := res.Validation
	assert.False(t, v.IsValid)
	require.Len(t, v.Errors, 1)
	assert.Contains(t, v.Errors[0], `"revolutionary"`)
	assert.LessOrEqual(t, len([]rune(res.Draft.Title)), 60)

	assert.Equal(t, 1, analyzerClient.calls)
	assert.Equal(t, 1, hnClient.calls)

	// A repeat run over the same document is served from the cache.
	again, err := o.Run(context.Background(), doc, []string{"hackernews"})
	require.NoError(t, err)
	assert.Equal(t, res.Draft, again["hackernews"].Draft)
	assert.Equal(t, 1, analyzerClient.calls)
	assert.Equal(t, 1, hnClient.calls)
}

func TestOrchestrator_ContextCancellation(t *testing.T) {
	store := testStore(t)
	hnClient := &stubClient{response: cleanDraftResponse}
	o, _ := testOrchestrator(t, &stubClient{response: dnaResponse},
		testAdapter(t, store, "hackernews", hnClient),
	)

	doc := source.Parse("# Tool X\n\nSome body.")

	// Warm the caches so a second run needs no model calls at all.
	_, err := o.Run(context.Background(), doc, []string{"hackernews"})
	require.NoError(t, err)
	callsAfterWarmup := hnClient.calls

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := o.Run(ctx, doc, []string{"hackernews"})
	require.NoError(t, err)
	require.Error(t, results["hackernews"].Err)
	assert.ErrorIs(t, results["hackernews"].Err, context.Canceled)
	assert.Nil(t, results["hackernews"].Draft)
	assert.Equal(t, callsAfterWarmup, hnClient.calls, "cancelled run must not reach the adapter")
}
