package platform

import "time"

var (
	midweek   = []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday}
	earlyWeek = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}
)

func init() {
	Register(&Rules{
		ID:          "hackernews",
		DisplayName: "Hacker News",
		Voice: `You are writing for Hacker News, a technical community that values:
- Technical depth over marketing fluff
- Honest discussion of limitations
- Substance over style

STRICT RULES:
- Title MUST start with "Show HN:" for tools
- Title MUST be 60 characters or fewer
- NO emoji, excessive punctuation, or superlatives
- Format: "Show HN: [Tool name] - [what it does technically]"

The body should cover: the technical problem, your approach, key
implementation details or challenges, honest limitations, and an
invitation to technical discussion. Humble, technical tone.`,
		TitleRequired:    true,
		ForbidEmojiTitle: true,
		StructuralSections: []Section{
			{Name: "show-hn prefix", Markers: []string{"Show HN:"}, TitleOnly: true},
			{Name: "limitations", Markers: []string{"limitation", "trade-off", "tradeoff", "not yet", "still working", "doesn't"}},
		},
		ForbiddenTerms: forbidden("disruptive", "innovative", "breakthrough", "ultimate"),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 60, Hard: true},
			"body":  {Min: 100, Max: 2000},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 14, EndHour: 17, Label: "prime"},
		},
		SweetSpotTypes: []string{"tool_launch", "case_study", "opinion"},
		AvoidTypes:     []string{"tutorial"},
		AudienceTags:   []string{"engineer", "developer", "founder", "hacker", "systems"},
	})

	Register(&Rules{
		ID:          "twitter",
		DisplayName: "Twitter/X",
		Voice: `You are writing a Twitter/X thread. The community values punchy,
authentic content with personality.

Thread structure:
1. HOOK: grab attention with a surprising fact or bold claim
2. PROBLEM: the pain point, in one or two tweets
3. SOLUTION: your approach, in two or three tweets
4. RESULTS: concrete outcomes
5. CTA: the final tweet carries the call to action and a link

Rules:
- Every tweet 280 characters or fewer
- At most 3 hashtags across the whole thread
- Questions drive replies; use one where it fits naturally`,
		Threaded: true,
		StructuralSections: []Section{
			{Name: "call to action", Markers: []string{"check out", "try it", "github.com", "follow", "let me know"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"chunk": {Max: 280, Hard: true},
			"tags":  {Max: 3},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 13, EndHour: 15, Label: "prime"},
			{Weekdays: midweek, StartHour: 17, EndHour: 19, Label: "good"},
		},
		SweetSpotTypes: []string{"tool_launch", "opinion", "announcement"},
		AudienceTags:   []string{"developer", "founder", "indie", "builder"},
	})

	Register(&Rules{
		ID:          "reddit",
		DisplayName: "Reddit",
		Voice: `You are writing for Reddit. Every subreddit hates obvious
self-promotion; the post must offer genuine value on its own.

Rules:
- Frame the post as sharing what you learned or built, not selling
- Be upfront that you made the thing ("I built...")
- Invite feedback and criticism explicitly
- No link-only posts: the body must stand alone`,
		TitleRequired:   true,
		CommunityLookup: true,
		MaxCommunities:  3,
		ForbiddenTerms:  forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 300, Hard: true},
			"body":  {Min: 100},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: earlyWeek, StartHour: 13, EndHour: 16, Label: "prime"},
		},
		SweetSpotTypes: []string{"tool_launch", "tutorial", "case_study"},
		AudienceTags:   []string{"developer", "self-hosted", "open source", "hobbyist"},
	})

	Register(&Rules{
		ID:          "linkedin",
		DisplayName: "LinkedIn",
		Voice: `You are writing for LinkedIn, a professional audience.

Rules:
- Open with a one-line hook; the feed truncates after ~3 lines
- Frame around lessons learned and professional outcomes
- Short paragraphs, generous whitespace
- End with a question to invite comments
- No hashtag walls: 3 at most, at the end`,
		StructuralSections: []Section{
			{Name: "closing question", Markers: []string{"?"}},
		},
		ForbiddenTerms: forbidden("synergy", "thought leader", "rockstar", "ninja", "guru"),
		LengthConstraints: map[string]LengthRange{
			"body": {Min: 200, Max: 3000, Hard: true},
			"tags": {Max: 3},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 12, EndHour: 15, Label: "prime"},
		},
		SweetSpotTypes: []string{"announcement", "case_study", "opinion"},
		AvoidTypes:     []string{"tutorial"},
		AudienceTags:   []string{"professional", "manager", "b2b", "career", "engineer"},
	})

	Register(&Rules{
		ID:          "devto",
		DisplayName: "DEV Community",
		Voice: `You are writing for dev.to, a developer community where beginners
are welcome.

Rules:
- Practical and example-driven; include at least one code snippet
  in a fenced block where it helps
- Friendly, no gatekeeping tone
- Up to 4 lowercase tags, like "go", "devops", "tutorial"
- A clear takeaway section at the end`,
		TitleRequired: true,
		StructuralSections: []Section{
			{Name: "code example", Markers: []string{"```"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 128, Hard: true},
			"tags":  {Max: 4, Hard: true},
			"body":  {Min: 300},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 14, EndHour: 17, Label: "prime"},
		},
		SweetSpotTypes: []string{"tutorial", "tool_launch", "case_study"},
		AudienceTags:   []string{"developer", "beginner", "web", "backend"},
	})

	Register(&Rules{
		ID:          "medium",
		DisplayName: "Medium",
		Voice: `You are writing a Medium article for general tech readers.

Rules:
- Personal narrative: why you built it, what went wrong, what you learned
- Long-form: aim for 1000+ words with subheadings
- Open with the story, not the product
- Avoid pure announcements; there must be a lesson worth reading`,
		TitleRequired:  true,
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 100},
			"body":  {Min: 800},
			"tags":  {Max: 5},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: []time.Weekday{time.Tuesday, time.Wednesday}, StartHour: 13, EndHour: 16, Label: "prime"},
			{Weekdays: []time.Weekday{time.Sunday}, StartHour: 18, EndHour: 21, Label: "good"},
		},
		SweetSpotTypes: []string{"tutorial", "case_study", "opinion"},
		AvoidTypes:     []string{"announcement"},
		AudienceTags:   []string{"reader", "professional", "tech", "generalist"},
	})

	Register(&Rules{
		ID:          "producthunt",
		DisplayName: "Product Hunt",
		Voice: `You are preparing a Product Hunt launch. Early adopters discover
new products here; the tagline carries the whole launch.

Rules:
- Tagline formula: [what it is] for [who/use case] - specific, not clever
- Description expands the tagline: what, for whom, key differentiator
- The body is the maker's first comment: why you built it, what makes
  it different, current status, and a genuine question for feedback
- Be transparent about stage (beta, early access)
- Personal, not corporate; PH users will try the product immediately`,
		TitleRequired: true,
		StructuralSections: []Section{
			{Name: "maker story", Markers: []string{"i built", "why i", "hey product hunt"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Min: 20, Max: 80, Hard: true},
			"body":  {Min: 200, Max: 1000},
			"tags":  {Max: 4},
		},
		TimingWindows: []TimingWindow{
			// PH resets at 00:01 PST; launch right at the reset.
			{Weekdays: midweek, StartHour: 8, EndHour: 9, Label: "launch"},
		},
		SweetSpotTypes: []string{"tool_launch"},
		AvoidTypes:     []string{"tutorial", "opinion", "case_study"},
		AudienceTags:   []string{"maker", "early adopter", "product", "indie"},
	})

	Register(&Rules{
		ID:          "lobsters",
		DisplayName: "Lobsters",
		Voice: `You are submitting to Lobsters (lobste.rs), a computing-focused
community that is stricter than Hacker News: invite-only, heavily
moderated, deeply technical.

Rules:
- Title is descriptive and technical: "[Tool name]: [what it does]"
- NO "I built...", "Check out...", "Introducing..."
- Disclose authorship for your own work
- 1-3 honest tags ("show" for personal projects plus the technology)
- No startup culture, business talk, or marketing`,
		TitleRequired:    true,
		ForbiddenTerms:   forbidden(),
		DiscouragedTerms: []string{"check out", "introducing", "announcing", "excited", "i built", "i made", "my new"},
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 100, Hard: true},
			"tags":  {Min: 1, Max: 4},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 14, EndHour: 17, Label: "prime"},
		},
		SweetSpotTypes: []string{"tool_launch", "case_study"},
		AvoidTypes:     []string{"opinion", "announcement"},
		AudienceTags:   []string{"systems", "engineer", "programmer", "senior"},
	})

	Register(&Rules{
		ID:          "hashnode",
		DisplayName: "Hashnode",
		Voice: `You are writing for Hashnode, a developer blogging platform with
good SEO and a strong personal-blog culture.

Rules:
- SEO-friendly title with the primary keyword, 50-70 chars ideal
- Sections with ## headers; each one concept, explanation, code, result
- Fenced code blocks with language tags
- Explain the why, not just the what
- End with learnings, next steps, and an invitation to comment
- 3-5 tags mixing broad and specific`,
		TitleRequired: true,
		StructuralSections: []Section{
			{Name: "code example", Markers: []string{"```"}},
			{Name: "section headers", Markers: []string{"##"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 100},
			"body":  {Min: 500},
			"tags":  {Max: 5},
		},
		TimingWindows: []TimingWindow{
			// Strong Indian developer community; include its morning.
			{Weekdays: midweek, StartHour: 6, EndHour: 8, Label: "good"},
			{Weekdays: midweek, StartHour: 14, EndHour: 16, Label: "prime"},
		},
		SweetSpotTypes: []string{"tutorial", "tool_launch", "case_study"},
		AudienceTags:   []string{"developer", "blogger", "web", "backend"},
	})

	Register(&Rules{
		ID:          "indiehackers",
		DisplayName: "Indie Hackers",
		Voice: `You are writing for Indie Hackers, the community of solo founders
and bootstrappers building in public.

Rules:
- Be specific: numbers in the title where you have them
- Structure: context, the story, the build, the numbers, what worked
  and what didn't, key takeaways, and an ask for the community
- Transparency beats polish; "$0 revenue but 50 signups" is valuable
- No VC-speak or press-release tone
- End with a genuine question or decision you're facing`,
		TitleRequired: true,
		StructuralSections: []Section{
			{Name: "structure", Markers: []string{"##", "**"}},
			{Name: "community ask", Markers: []string{"?"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 200},
			"body":  {Min: 300},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: earlyWeek, StartHour: 14, EndHour: 17, Label: "prime"},
		},
		SweetSpotTypes: []string{"tool_launch", "case_study"},
		AudienceTags:   []string{"founder", "indie", "bootstrapper", "solo", "builder"},
	})

	Register(&Rules{
		ID:          "peerlist",
		DisplayName: "Peerlist",
		Voice: `You are writing for Peerlist, a professional network for tech
professionals that values career achievements and project showcases.

Rules:
- Frame the content as a professional achievement
- Structure: what you built, the challenge, your approach, the impact
- Highlight the skills and growth it demonstrates
- Professional but approachable tone
- Concise; end by inviting connection or discussion`,
		TitleRequired: true,
		StructuralSections: []Section{
			{Name: "achievement framing", Markers: []string{"built", "achieved", "implemented", "solved", "improved", "learned"}},
		},
		ForbiddenTerms: forbidden(),
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 100},
			"body":  {Min: 50, Max: 2000},
		},
		TimingWindows: []TimingWindow{
			// India morning plus US morning.
			{Weekdays: earlyWeek, StartHour: 4, EndHour: 7, Label: "good"},
			{Weekdays: earlyWeek, StartHour: 14, EndHour: 16, Label: "prime"},
		},
		SweetSpotTypes: []string{"tool_launch", "announcement", "case_study"},
		AudienceTags:   []string{"professional", "career", "engineer", "tech"},
	})

	Register(&Rules{
		ID:          "substack",
		DisplayName: "Substack",
		Voice: `You are writing a Substack newsletter post. Subscribers chose to
receive this in their inbox; the title is the email subject line.

Rules:
- Title must work in an inbox preview: 50-60 chars, intrigue without
  clickbait
- Open with something specific, never "In this week's newsletter..."
- Go deep on one idea; mix personal experience with insight
- Conversational but thoughtful, like writing to a smart friend
- Close by circling back and leaving something to think about, not a
  hard call to action`,
		TitleRequired:    true,
		ForbiddenTerms:   forbidden(),
		DiscouragedTerms: []string{"in this week's newsletter", "welcome to my newsletter"},
		LengthConstraints: map[string]LengthRange{
			"title": {Max: 80},
			"body":  {Min: 500, Max: 5000},
		},
		TimingWindows: []TimingWindow{
			{Weekdays: midweek, StartHour: 14, EndHour: 16, Label: "prime"},
			{Weekdays: []time.Weekday{time.Sunday}, StartHour: 18, EndHour: 21, Label: "good"},
		},
		SweetSpotTypes: []string{"opinion", "case_study"},
		AvoidTypes:     []string{"announcement"},
		AudienceTags:   []string{"reader", "writer", "newsletter", "thought"},
	})
}
