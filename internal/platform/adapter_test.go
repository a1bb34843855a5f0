package platform

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
	"github.com/srijanshukla18/global-publish/internal/cache"
)

// stubClient is a canned llm.Client for tests.
type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) Complete(ctx context.Context, system, user string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) Model() string { return "stub-model" }

func testDNA() *analyzer.ContentDNA {
	return &analyzer.ContentDNA{
		ValueProposition:  "Speeds up Go builds with incremental caching.",
		ProblemSolved:     "Slow CI builds",
		TechnicalDetails:  []string{"Go", "content-addressed cache", "CI"},
		TargetAudience:    "Go backend developers",
		UniqueAspects:     []string{"no daemon required"},
		Limitations:       []string{"Linux only"},
		ContentType:       "tool_launch",
		SourceFingerprint: "fp-test",
	}
}

func newTestAdapter(t *testing.T, platformID string, client *stubClient) *Adapter {
	t.Helper()
	store, err := cache.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rules, ok := Get(platformID)
	require.True(t, ok)

	return NewAdapter(AdapterConfig{
		Rules:  rules,
		Client: client,
		Cache:  store,
		TTL:    time.Hour,
	})
}

func TestAdapter_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("parses draft response", func(t *testing.T) {
		client := &stubClient{response: `{
			"title": "Show HN: Incremental build cache for Go",
			"body": "I built this because CI was slow. One limitation: Linux only.",
			"tags": ["go", "build"],
			"metadata": {"category": "Show HN"}
		}`}
		a := newTestAdapter(t, "hackernews", client)

		draft, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)
		assert.Equal(t, "hackernews", draft.PlatformID)
		assert.Equal(t, "Show HN: Incremental build cache for Go", draft.Title)
		assert.Contains(t, draft.Body, "CI was slow")
		assert.Equal(t, []string{"go", "build"}, draft.Tags)
		assert.Equal(t, "Show HN", draft.Metadata["category"])
	})

	t.Run("prompt carries tone, voice, and dna", func(t *testing.T) {
		client := &stubClient{response: `{"title": "t", "body": "b"}`}
		a := newTestAdapter(t, "hackernews", client)

		prompt := a.buildPrompt(testDNA())
		assert.Contains(t, prompt, "BANNED PHRASES")
		assert.Contains(t, prompt, "Show HN:")
		assert.Contains(t, prompt, "Speeds up Go builds with incremental caching.")
		assert.Contains(t, prompt, "Linux only")
	})

	t.Run("threaded platform derives body from thread", func(t *testing.T) {
		client := &stubClient{response: `{
			"thread": ["Hook: builds are slow.", "The fix: cache everything.", "Try it: github.com/x"],
			"tags": ["buildinpublic"]
		}`}
		a := newTestAdapter(t, "twitter", client)

		draft, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)
		require.Len(t, draft.Thread, 3)
		assert.Equal(t, "Hook: builds are slow.\n\nThe fix: cache everything.\n\nTry it: github.com/x", draft.Body)
	})

	t.Run("community lookup fills candidates", func(t *testing.T) {
		client := &stubClient{response: `{
			"title": "I built an incremental build cache for Go",
			"body": "Sharing what I learned building it. Feedback welcome."
		}`}
		a := newTestAdapter(t, "reddit", client)

		draft, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)
		assert.NotEmpty(t, draft.Communities)
		assert.LessOrEqual(t, len(draft.Communities), 3)
		assert.Contains(t, draft.Communities, "r/golang")
	})

	t.Run("missing body fails with GenerationError", func(t *testing.T) {
		client := &stubClient{response: `{"title": "only a title"}`}
		a := newTestAdapter(t, "hackernews", client)

		_, err := a.Generate(ctx, testDNA())
		require.Error(t, err)

		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "hackernews", genErr.Platform)
		assert.Equal(t, client.response, genErr.RawResponse)
	})

	t.Run("unparseable response fails with GenerationError", func(t *testing.T) {
		client := &stubClient{response: "sorry, I can't help with that"}
		a := newTestAdapter(t, "hackernews", client)

		_, err := a.Generate(ctx, testDNA())
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
	})

	t.Run("model failure is not a GenerationError", func(t *testing.T) {
		wantErr := errors.New("network down")
		client := &stubClient{err: wantErr}
		a := newTestAdapter(t, "hackernews", client)

		_, err := a.Generate(ctx, testDNA())
		require.ErrorIs(t, err, wantErr)

		var genErr *GenerationError
		assert.False(t, errors.As(err, &genErr))
	})

	t.Run("second generation served from cache", func(t *testing.T) {
		client := &stubClient{response: `{
			"title": "Show HN: Incremental build cache for Go",
			"body": "Cached body."
		}`}
		a := newTestAdapter(t, "hackernews", client)

		first, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)

		second, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)

		assert.Equal(t, first, second, "cached draft must round-trip identically")
		assert.Equal(t, 1, client.calls, "cache hit must not call the model")
	})

	t.Run("failed generation is not cached", func(t *testing.T) {
		client := &stubClient{response: "garbage"}
		a := newTestAdapter(t, "hackernews", client)

		_, err := a.Generate(ctx, testDNA())
		require.Error(t, err)

		client.response = `{"title": "t", "body": "recovered body"}`
		draft, err := a.Generate(ctx, testDNA())
		require.NoError(t, err)
		assert.Equal(t, "recovered body", draft.Body)
		assert.Equal(t, 2, client.calls)
	})
}
