// Package platform turns ContentDNA into platform-tailored drafts. One
// generic Adapter is parameterized by static per-platform Rules; there are
// no per-platform types.
package platform

import (
	"fmt"
	"sort"
	"time"
)

// LengthRange constrains the size of a draft field, in characters for text
// fields and items for list fields. Hard violations block use; soft ones
// are advisory.
type LengthRange struct {
	Min  int
	Max  int
	Hard bool
}

// Section is a named structural element the platform expects in a draft.
// It counts as present when any of its markers appears, case-insensitively,
// in the draft text.
type Section struct {
	Name    string
	Markers []string

	// TitleOnly sections must appear in the title; by default markers are
	// matched against the body and thread.
	TitleOnly bool
}

// TimingWindow is a recommended posting window in UTC. Hours are
// half-open: [StartHour, EndHour).
type TimingWindow struct {
	Weekdays  []time.Weekday
	StartHour int
	EndHour   int
	Label     string
}

// Rules is the static configuration for one publishing venue. Loaded once
// at init and never mutated.
type Rules struct {
	ID          string
	DisplayName string

	// Voice is the community-culture ruleset injected into the
	// generation prompt.
	Voice string

	TitleRequired    bool
	ForbidEmojiTitle bool

	// Threaded platforms decompose the body into an ordered list of
	// chunks, the last of which carries the call to action.
	Threaded bool

	// CommunityLookup platforms get 1-3 candidate communities selected
	// from the static keyword table.
	CommunityLookup bool
	MaxCommunities  int

	StructuralSections []Section
	ForbiddenTerms     []string

	// DiscouragedTerms read badly on the platform but don't block use;
	// findings surface as warnings, not errors.
	DiscouragedTerms  []string
	LengthConstraints map[string]LengthRange
	TimingWindows     []TimingWindow

	// Recommender inputs: content types that tend to land well or
	// poorly, and keywords describing the platform's audience.
	SweetSpotTypes []string
	AvoidTypes     []string
	AudienceTags   []string
}

var registry = make(map[string]*Rules)

// Register adds a platform to the registry. Platform IDs are globally
// unique; registering a duplicate is a programming error.
func Register(r *Rules) {
	if _, dup := registry[r.ID]; dup {
		panic(fmt.Sprintf("platform %q registered twice", r.ID))
	}
	registry[r.ID] = r
}

// Get returns the rules for a platform ID.
func Get(id string) (*Rules, bool) {
	r, ok := registry[id]
	return r, ok
}

// IDs returns all registered platform IDs, sorted.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all registered rules, ordered by ID.
func All() []*Rules {
	all := make([]*Rules, 0, len(registry))
	for _, id := range IDs() {
		all = append(all, registry[id])
	}
	return all
}
