package platform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
)

// Fit levels for platform recommendations.
const (
	FitStrong   = "strong"
	FitModerate = "moderate"
	FitWeak     = "weak"
)

// Recommendation says how well one platform suits the content.
type Recommendation struct {
	Platform string
	Fit      string
	Reason   string
}

// Recommend scores every registered platform against the DNA. Purely
// data-driven and deterministic: content-type affinity plus audience
// keyword overlap, ordered by score with ties broken by platform ID.
func Recommend(dna *analyzer.ContentDNA) []Recommendation {
	haystack := strings.ToLower(
		dna.TargetAudience + " " + strings.Join(dna.TechnicalDetails, " "),
	)

	type scored struct {
		rec   Recommendation
		score int
	}
	var results []scored

	for _, r := range All() {
		score := 0
		var reasons []string

		for _, t := range r.SweetSpotTypes {
			if t == dna.ContentType {
				score += 2
				reasons = append(reasons, fmt.Sprintf("%s content is a sweet spot", dna.ContentType))
				break
			}
		}
		for _, t := range r.AvoidTypes {
			if t == dna.ContentType {
				score -= 2
				reasons = append(reasons, fmt.Sprintf("%s content rarely lands here", dna.ContentType))
				break
			}
		}

		matched := 0
		for _, tag := range r.AudienceTags {
			if strings.Contains(haystack, tag) {
				matched++
			}
		}
		if matched > 0 {
			score += matched
			reasons = append(reasons, fmt.Sprintf("audience overlap on %d keyword(s)", matched))
		}

		fit := FitWeak
		switch {
		case score >= 3:
			fit = FitStrong
		case score >= 1:
			fit = FitModerate
		}
		if len(reasons) == 0 {
			reasons = append(reasons, "no particular affinity")
		}

		results = append(results, scored{
			rec: Recommendation{
				Platform: r.ID,
				Fit:      fit,
				Reason:   strings.Join(reasons, "; "),
			},
			score: score,
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].score != results[b].score {
			return results[a].score > results[b].score
		}
		return results[a].rec.Platform < results[b].rec.Platform
	})

	recs := make([]Recommendation, len(results))
	for i, s := range results {
		recs[i] = s.rec
	}
	return recs
}
