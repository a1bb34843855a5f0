package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
	"github.com/srijanshukla18/global-publish/internal/cache"
	"github.com/srijanshukla18/global-publish/internal/llm"
)

const generationSystemPrompt = `You are a content repurposing assistant. You rewrite a source document's extracted DNA into a draft tailored for one specific publishing venue, strictly following that venue's culture and rules. You always respond with a single JSON object and nothing else.`

// Adapter generates drafts for one platform. The same implementation
// serves every platform; behavior differences come from Rules.
type Adapter struct {
	rules *Rules
	llm   llm.Client
	cache *cache.Store
	ttl   time.Duration
}

// AdapterConfig holds configuration for an Adapter.
type AdapterConfig struct {
	Rules  *Rules
	Client llm.Client
	Cache  *cache.Store
	TTL    time.Duration
}

// NewAdapter creates an Adapter for one platform.
func NewAdapter(cfg AdapterConfig) *Adapter {
	return &Adapter{
		rules: cfg.Rules,
		llm:   cfg.Client,
		cache: cfg.Cache,
		ttl:   cfg.TTL,
	}
}

// Rules returns the platform rules this adapter applies.
func (a *Adapter) Rules() *Rules {
	return a.rules
}

// Generate turns ContentDNA into a platform draft. The cache is consulted
// first; on a miss it makes one model call and stores the successful
// result. Unparseable output fails with *GenerationError.
func (a *Adapter) Generate(ctx context.Context, dna *analyzer.ContentDNA) (*Draft, error) {
	key := cache.Key(dna.SourceFingerprint, a.rules.ID, a.llm.Model())

	if cached, ok := a.lookupCache(ctx, key); ok {
		slog.Debug("draft served from cache", "platform", a.rules.ID)
		return cached, nil
	}

	prompt := a.buildPrompt(dna)
	response, err := a.llm.Complete(ctx, generationSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}

	draft, err := a.parseDraft(response)
	if err != nil {
		return nil, &GenerationError{Platform: a.rules.ID, RawResponse: response, Err: err}
	}

	if a.rules.CommunityLookup {
		draft.Communities = SelectCommunities(dna, a.rules.MaxCommunities)
	}

	a.storeCache(ctx, key, draft)

	slog.Info("draft generated",
		"platform", a.rules.ID,
		"title_len", len(draft.Title),
		"body_len", len(draft.Body),
	)

	return draft, nil
}

// buildPrompt assembles tone guidelines, the platform ruleset, the
// serialized DNA, and the output-shape instructions.
func (a *Adapter) buildPrompt(dna *analyzer.ContentDNA) string {
	var b strings.Builder

	b.WriteString(ToneGuidelines)
	b.WriteString("\n\n")
	b.WriteString(a.rules.Voice)
	b.WriteString("\n\nContent DNA:\n")
	fmt.Fprintf(&b, "- Value proposition: %s\n", dna.ValueProposition)
	fmt.Fprintf(&b, "- Problem solved: %s\n", dna.ProblemSolved)
	fmt.Fprintf(&b, "- Technical details: %s\n", strings.Join(dna.TechnicalDetails, "; "))
	fmt.Fprintf(&b, "- Target audience: %s\n", dna.TargetAudience)
	if len(dna.KeyMetrics) > 0 {
		fmt.Fprintf(&b, "- Key metrics: %s\n", strings.Join(dna.KeyMetrics, "; "))
	}
	if len(dna.UniqueAspects) > 0 {
		fmt.Fprintf(&b, "- Unique aspects: %s\n", strings.Join(dna.UniqueAspects, "; "))
	}
	if len(dna.Limitations) > 0 {
		fmt.Fprintf(&b, "- Limitations: %s\n", strings.Join(dna.Limitations, "; "))
	}
	fmt.Fprintf(&b, "- Content type: %s\n", dna.ContentType)

	b.WriteString("\n")
	if a.rules.Threaded {
		b.WriteString(threadShapeInstructions)
	} else {
		b.WriteString(draftShapeInstructions)
	}

	return b.String()
}

const draftShapeInstructions = `Respond with a single JSON object and nothing else:
{
  "title": "the post title, empty string if the platform has no title",
  "body": "the full post body",
  "tags": ["up", "to", "a", "few", "tags"],
  "metadata": {"any": "platform-specific extras"}
}`

const threadShapeInstructions = `Respond with a single JSON object and nothing else:
{
  "thread": ["first chunk", "second chunk", "... the final chunk is the call to action"],
  "tags": ["hashtags", "without", "the #"],
  "metadata": {"any": "platform-specific extras"}
}`

// draftPayload is the expected shape of a generation response. Unknown
// fields are ignored; missing fields other than the body are empty, not
// fatal.
type draftPayload struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Thread   []string          `json:"thread"`
	Tags     []string          `json:"tags"`
	Metadata map[string]string `json:"metadata"`
}

func (a *Adapter) parseDraft(response string) (*Draft, error) {
	jsonStr, ok := llm.ExtractJSONObject(response)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var payload draftPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	body := strings.TrimSpace(payload.Body)
	if body == "" && len(payload.Thread) > 0 {
		// Threaded platforms return the body pre-decomposed.
		body = strings.TrimSpace(strings.Join(payload.Thread, "\n\n"))
	}
	if body == "" {
		return nil, fmt.Errorf("response missing body")
	}

	return &Draft{
		PlatformID: a.rules.ID,
		Title:      strings.TrimSpace(payload.Title),
		Body:       body,
		Thread:     payload.Thread,
		Tags:       payload.Tags,
		Metadata:   payload.Metadata,
	}, nil
}

func (a *Adapter) lookupCache(ctx context.Context, key string) (*Draft, bool) {
	payload, ok, err := a.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache lookup failed", "platform", a.rules.ID, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var draft Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		slog.Warn("corrupt cached draft, regenerating", "platform", a.rules.ID, "error", err)
		return nil, false
	}
	return &draft, true
}

func (a *Adapter) storeCache(ctx context.Context, key string, draft *Draft) {
	payload, err := json.Marshal(draft)
	if err != nil {
		slog.Warn("marshal draft for cache", "platform", a.rules.ID, "error", err)
		return
	}
	if err := a.cache.Put(ctx, key, payload, a.ttl); err != nil {
		slog.Warn("cache write failed", "platform", a.rules.ID, "error", err)
	}
}
