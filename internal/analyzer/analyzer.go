// Package analyzer implements the first pipeline stage: turning a source
// document into its ContentDNA via the language model.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/llm"
	"github.com/srijanshukla18/global-publish/internal/source"
)

// CacheScope is the scope component of the analyzer's cache keys.
const CacheScope = "analysis"

// ContentDNA is the structured essence of a source document. It is
// created once per distinct document and read-only thereafter.
type ContentDNA struct {
	ValueProposition  string   `json:"value_proposition"`
	ProblemSolved     string   `json:"problem_solved"`
	TechnicalDetails  []string `json:"technical_details"`
	TargetAudience    string   `json:"target_audience"`
	KeyMetrics        []string `json:"key_metrics"`
	UniqueAspects     []string `json:"unique_aspects"`
	Limitations       []string `json:"limitations"`
	ContentType       string   `json:"content_type"`
	SourceFingerprint string   `json:"source_fingerprint"`
}

// ExtractionError indicates the model's response could not be parsed into
// a ContentDNA. It carries the raw response for diagnostics.
type ExtractionError struct {
	RawResponse string
	Err         error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract content dna: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Analyzer extracts ContentDNA from source documents.
type Analyzer struct {
	llm   llm.Client
	cache *cache.Store
	ttl   time.Duration
}

// Config holds configuration for the analyzer.
type Config struct {
	Client llm.Client
	Cache  *cache.Store
	TTL    time.Duration
}

// New creates a new Analyzer.
func New(cfg Config) *Analyzer {
	return &Analyzer{
		llm:   cfg.Client,
		cache: cfg.Cache,
		ttl:   cfg.TTL,
	}
}

// Extract turns a source document into its ContentDNA. The cache is
// consulted first; on a miss it makes exactly one model call and stores
// the result. It does not guess or partially fill the DNA: an
// unparseable response fails with *ExtractionError.
func (a *Analyzer) Extract(ctx context.Context, doc *source.Document) (*ContentDNA, error) {
	key := cache.Key(doc.Fingerprint, CacheScope, a.llm.Model())

	if cached, ok := a.lookupCache(ctx, key); ok {
		slog.Debug("content dna served from cache", "fingerprint", doc.Fingerprint[:8])
		return cached, nil
	}

	prompt := fmt.Sprintf(analysisPrompt, doc.Raw)
	response, err := a.llm.Complete(ctx, analysisSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	dna, err := parseDNA(response)
	if err != nil {
		return nil, &ExtractionError{RawResponse: response, Err: err}
	}
	dna.SourceFingerprint = doc.Fingerprint

	a.storeCache(ctx, key, dna)

	slog.Info("content dna extracted",
		"fingerprint", doc.Fingerprint[:8],
		"content_type", dna.ContentType,
		"technical_details", len(dna.TechnicalDetails),
	)

	return dna, nil
}

// parseDNA parses the model response into a ContentDNA.
func parseDNA(response string) (*ContentDNA, error) {
	jsonStr, ok := llm.ExtractJSONObject(response)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var dna ContentDNA
	if err := json.Unmarshal([]byte(jsonStr), &dna); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if dna.ValueProposition == "" {
		return nil, fmt.Errorf("response missing value_proposition")
	}

	return &dna, nil
}

func (a *Analyzer) lookupCache(ctx context.Context, key string) (*ContentDNA, bool) {
	payload, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache lookup failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var dna ContentDNA
	if err := json.Unmarshal(payload, &dna); err != nil {
		slog.Warn("corrupt cached dna, regenerating", "error", err)
		return nil, false
	}
	return &dna, true
}

func (a *Analyzer) storeCache(ctx context.Context, key string, dna *ContentDNA) {
	payload, err := json.Marshal(dna)
	if err != nil {
		slog.Warn("marshal dna for cache", "error", err)
		return
	}
	if err := a.cache.Put(ctx, key, payload, a.ttl); err != nil {
		slog.Warn("cache write failed", "error", err)
	}
}
