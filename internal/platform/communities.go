package platform

import (
	"sort"
	"strings"

	"github.com/srijanshukla18/global-publish/internal/analyzer"
)

// Community is one entry in the static community lookup table.
type Community struct {
	Name string

	// Tags are matched as substrings against the DNA's technical
	// details, audience, and value proposition.
	Tags []string

	// Types are content types the community is receptive to.
	Types []string
}

// communityTable is indexed by keyword, not fetched from anywhere. Order
// matters: ties in score resolve to the earlier entry.
var communityTable = []Community{
	{Name: "r/golang", Tags: []string{"go ", "golang", "goroutine"}, Types: []string{"tool_launch", "tutorial"}},
	{Name: "r/programming", Tags: []string{"programming", "software", "architecture", "performance", "compiler"}, Types: []string{"opinion", "case_study"}},
	{Name: "r/rust", Tags: []string{"rust", "cargo", "crate"}, Types: []string{"tool_launch", "tutorial"}},
	{Name: "r/python", Tags: []string{"python", "pip", "django", "flask"}, Types: []string{"tool_launch", "tutorial"}},
	{Name: "r/javascript", Tags: []string{"javascript", "typescript", "node", "npm"}, Types: []string{"tool_launch", "tutorial"}},
	{Name: "r/webdev", Tags: []string{"frontend", "react", "css", "web app", "browser"}, Types: []string{"tool_launch", "tutorial", "case_study"}},
	{Name: "r/devops", Tags: []string{"devops", " ci ", "ci/cd", "kubernetes", "docker", "deployment", "infrastructure", "build"}, Types: []string{"tool_launch", "tutorial"}},
	{Name: "r/selfhosted", Tags: []string{"self-hosted", "selfhosted", "homelab", "docker", "server"}, Types: []string{"tool_launch"}},
	{Name: "r/opensource", Tags: []string{"open source", "open-source", "oss", "github", "license"}, Types: []string{"tool_launch", "announcement"}},
	{Name: "r/commandline", Tags: []string{"cli", "command line", "terminal", "shell"}, Types: []string{"tool_launch"}},
	{Name: "r/MachineLearning", Tags: []string{"machine learning", "llm", " ml ", "model", "inference"}, Types: []string{"tool_launch", "case_study"}},
	{Name: "r/SideProject", Tags: []string{"side project", "saas", "indie", "startup", "solo"}, Types: []string{"tool_launch", "announcement"}},
}

// SelectCommunities picks up to max candidate communities for the content
// by scoring keyword overlap against the table. Deterministic for a fixed
// DNA: scored ranking, ties broken by table order.
func SelectCommunities(dna *analyzer.ContentDNA, max int) []string {
	if max <= 0 {
		max = 3
	}

	haystack := strings.ToLower(
		strings.Join(dna.TechnicalDetails, " ") + " " +
			dna.TargetAudience + " " +
			dna.ValueProposition + " " +
			dna.ProblemSolved,
	)
	// Pad so word-boundary tags like "go " can match at the edges.
	haystack = " " + haystack + " "

	type scored struct {
		idx   int
		score int
	}
	var candidates []scored

	for i, c := range communityTable {
		score := 0
		for _, tag := range c.Tags {
			if strings.Contains(haystack, tag) {
				score += 2
			}
		}
		if score == 0 {
			continue
		}
		for _, t := range c.Types {
			if t == dna.ContentType {
				score++
				break
			}
		}
		candidates = append(candidates, scored{idx: i, score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = communityTable[c.idx].Name
	}
	return names
}
