package analyzer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/source"
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

const validDNAResponse = `{
	"value_proposition": "Speeds up Go builds with incremental caching.",
	"problem_solved": "Slow CI builds",
	"technical_details": ["Go", "content-addressed cache"],
	"target_audience": "Go backend developers",
	"key_metrics": ["3x faster builds"],
	"unique_aspects": ["no daemon required"],
	"limitations": ["Linux only"],
	"content_type": "tool_launch"
}`

func newTestAnalyzer(t *testing.T, client *stubClient) *Analyzer {
	t.Helper()
	store, err := cache.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return New(Config{Client: client, Cache: store, TTL: time.Hour})
}

func TestAnalyzer_Extract(t *testing.T) {
	ctx := context.Background()
	doc := source.Parse("# Tool X\n\nSolves slow builds for Go projects using incremental caching.")

	t.Run("parses model response", func(t *testing.T) {
		client := &stubClient{response: validDNAResponse}
		a := newTestAnalyzer(t, client)

		dna, err := a.Extract(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, "Speeds up Go builds with incremental caching.", dna.ValueProposition)
		assert.Equal(t, []string{"Go", "content-addressed cache"}, dna.TechnicalDetails)
		assert.Equal(t, doc.Fingerprint, dna.SourceFingerprint)
		assert.Equal(t, 1, client.calls)
	})

	t.Run("handles code-fenced response", func(t *testing.T) {
		client := &stubClient{response: "```json\n" + validDNAResponse + "\n```"}
		a := newTestAnalyzer(t, client)

		dna, err := a.Extract(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, "tool_launch", dna.ContentType)
	})

	t.Run("second extraction served from cache", func(t *testing.T) {
		client := &stubClient{response: validDNAResponse}
		a := newTestAnalyzer(t, client)

		first, err := a.Extract(ctx, doc)
		require.NoError(t, err)

		second, err := a.Extract(ctx, doc)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, client.calls, "cache hit must not call the model")
	})

	t.Run("unparseable response fails with ExtractionError", func(t *testing.T) {
		client := &stubClient{response: "I could not analyze this content, sorry."}
		a := newTestAnalyzer(t, client)

		_, err := a.Extract(ctx, doc)
		require.Error(t, err)

		var extErr *ExtractionError
		require.ErrorAs(t, err, &extErr)
		assert.Equal(t, client.response, extErr.RawResponse)
	})

	t.Run("empty value_proposition is fatal", func(t *testing.T) {
		client := &stubClient{response: `{"value_proposition": "", "problem_solved": "x"}`}
		a := newTestAnalyzer(t, client)

		_, err := a.Extract(ctx, doc)
		var extErr *ExtractionError
		require.ErrorAs(t, err, &extErr)
	})

	t.Run("model failure propagates", func(t *testing.T) {
		wantErr := errors.New("boom")
		client := &stubClient{err: wantErr}
		a := newTestAnalyzer(t, client)

		_, err := a.Extract(ctx, doc)
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("failed extraction is not cached", func(t *testing.T) {
		client := &stubClient{response: "garbage"}
		a := newTestAnalyzer(t, client)

		_, err := a.Extract(ctx, doc)
		require.Error(t, err)

		client.response = validDNAResponse
		dna, err := a.Extract(ctx, doc)
		require.NoError(t, err)
		assert.NotEmpty(t, dna.ValueProposition)
		assert.Equal(t, 2, client.calls)
	})
}
