package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryanwahyu/ideaforge/internal/domain/ai"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// AnalysisInstructions is the fixed instruction template sent ahead of the
// user transcript. The rating rubric is advisory text for the model; the
// numeric range is not enforced locally.
const AnalysisInstructions = `You are an expert product analyst and startup advisor. Analyze the following idea and provide a comprehensive evaluation.

Respond ONLY with valid JSON in this exact format (no markdown, no code blocks):
{
  "title": "A catchy, memorable product/idea name (2-4 words)",
  "tagline": "A short, memorable tagline that captures the essence (under 10 words)",
  "rating": 8,
  "analysis": "A 2-3 paragraph detailed analysis of the idea covering market potential, feasibility, and uniqueness",
  "keyPoints": ["Key strength or feature 1", "Key strength or feature 2", "Key strength or feature 3"],
  "improvements": ["Suggested improvement 1", "Suggested improvement 2", "Suggested improvement 3"]
}

The rating should be from 1-10 based on:
- Market potential (30%)
- Technical feasibility (25%)
- Uniqueness/Innovation (25%)
- Clarity of the idea (20%)

Be constructive but honest. If the idea has flaws, mention them while being encouraging.

IDEA TO ANALYZE:
`

// StripFences removes optional surrounding markdown code fences from a model reply.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// ParseAnalysis validates a raw model reply against the analysis contract.
// Replies that are not JSON fail with ai.ErrParse; valid JSON missing a
// non-empty title/tagline or a numeric rating fails with ai.ErrSchema.
func ParseAnalysis(raw string) (*ideas.Analysis, error) {
	cleaned := StripFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ai.ErrParse, err)
	}

	var a ideas.Analysis
	if err := json.Unmarshal([]byte(cleaned), &a); err != nil {
		// valid JSON but wrong field types (e.g. rating as a string)
		return nil, fmt.Errorf("%w: %v", ai.ErrSchema, err)
	}
	if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Tagline) == "" {
		return nil, fmt.Errorf("%w: empty title or tagline", ai.ErrSchema)
	}
	ratingRaw, ok := fields["rating"]
	if !ok {
		return nil, fmt.Errorf("%w: rating is missing", ai.ErrSchema)
	}
	// `null` passes the presence check and decodes into float64 without error,
	// so the rating payload must be checked on its own
	var rating float64
	if err := json.Unmarshal(ratingRaw, &rating); err != nil || string(ratingRaw) == "null" {
		return nil, fmt.Errorf("%w: rating is not numeric", ai.ErrSchema)
	}
	return &a, nil
}
