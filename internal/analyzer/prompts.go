package analyzer

// analysisSystemPrompt frames the extraction task.
const analysisSystemPrompt = `You are a content analyst. Given a source document (usually a project README or announcement), you extract its core facts into a precise structured form. That structure will later be used to rewrite the content for different publishing venues, so capture only what is actually present in the document. Never invent metrics, features, or claims.`

// analysisPrompt is the user prompt template for DNA extraction.
const analysisPrompt = `Analyze the following content and extract its core "DNA".

Content:
---
%s
---

Extract these fields:
1. value_proposition: A single, compelling sentence describing the core value.
2. problem_solved: What pain point does this address?
3. technical_details: List of 3-5 specific technologies, frameworks, or architectural patterns mentioned or implied.
4. target_audience: Who is this specifically for? (e.g. "Go backend developers", "DevOps engineers")
5. key_metrics: Any numbers, benchmarks, or results mentioned.
6. unique_aspects: What makes this different from existing solutions?
7. limitations: Honest trade-offs or missing features, if any are mentioned.
8. content_type: One of "tool_launch", "tutorial", "opinion", "case_study", "announcement".

Be concise and extract only what is actually present in the content.

Respond with a single JSON object and nothing else:
{
  "value_proposition": "...",
  "problem_solved": "...",
  "technical_details": ["...", "..."],
  "target_audience": "...",
  "key_metrics": ["..."],
  "unique_aspects": ["..."],
  "limitations": ["..."],
  "content_type": "..."
}`
