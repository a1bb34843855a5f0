package platform

// ToneGuidelines is prepended to every generation prompt. Marketing fluff
// reads badly on every supported venue, so the baseline is shared.
const ToneGuidelines = `TONE REQUIREMENTS (apply to every platform):

BANNED PHRASES - never use these:
"revolutionary", "game-changing", "amazing", "incredible", "perfect",
"unlock", "supercharge", "leverage the power", "seamless", "cutting-edge",
"next-generation", "unprecedented", "industry-leading",
"don't miss out", "limited time", "sign up now", "take your X to the next level"

REQUIRED TONE:
- Authentic: write like a real person, not a marketer
- Specific: concrete details, numbers, actual features, not vague claims
- Humble: honest about limitations and trade-offs
- Natural: conversational, as if explaining to a colleague
- Story-focused: why it was built, what problem it solves

BAD: "Revolutionize your workflow with our game-changing platform!"
GOOD: "I built this because I was frustrated switching between 5 tools.
It combines kanban with time tracking. Saves me about 2 hours/week.
Still working on mobile support, but the desktop version is solid."`

// bannedPhrases is the machine-checked baseline behind the prompt ban
// above. Every platform's ForbiddenTerms starts from this list.
var bannedPhrases = []string{
	"revolutionary",
	"game-changing",
	"cutting-edge",
	"next-generation",
	"unprecedented",
	"industry-leading",
	"supercharge",
	"seamless",
	"leverage the power",
	"unlock the power",
	"don't miss out",
	"limited time",
	"sign up now",
	"to the next level",
}

// forbidden merges the shared banned phrases with platform extras.
func forbidden(extra ...string) []string {
	terms := make([]string, 0, len(bannedPhrases)+len(extra))
	terms = append(terms, bannedPhrases...)
	terms = append(terms, extra...)
	return terms
}
