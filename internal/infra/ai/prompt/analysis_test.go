package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/bryanwahyu/ideaforge/internal/domain/ai"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

const validReply = `{
  "title": "HydroSense",
  "tagline": "Never miss a sip",
  "rating": 7,
  "analysis": "Strong market potential.",
  "keyPoints": ["tracking", "reminders"],
  "improvements": ["battery life"]
}`

func TestParseAnalysis(t *testing.T) {
	a, err := ParseAnalysis(validReply)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if a.Title != "HydroSense" || a.Tagline != "Never miss a sip" || a.Rating != 7 {
		t.Fatalf("unexpected analysis: %+v", a)
	}
	if len(a.KeyPoints) != 2 || len(a.Improvements) != 1 {
		t.Fatalf("lists not preserved: %+v", a)
	}
}

func TestParseAnalysisFenced(t *testing.T) {
	plain, err := ParseAnalysis(validReply)
	if err != nil {
		t.Fatal(err)
	}

	for _, wrapped := range []string{
		"```json\n" + validReply + "\n```",
		"```\n" + validReply + "\n```",
		"  ```json\n" + validReply + "\n```  ",
	} {
		fenced, err := ParseAnalysis(wrapped)
		if err != nil {
			t.Fatalf("fenced reply failed: %v", err)
		}
		if fenced.Title != plain.Title || fenced.Tagline != plain.Tagline || fenced.Rating != plain.Rating {
			t.Fatalf("fenced parse differs from plain: %+v vs %+v", fenced, plain)
		}
	}
}

func TestParseAnalysisErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", "here is your analysis!", ai.ErrParse},
		{"truncated", `{"title": "x"`, ai.ErrParse},
		{"missing title", `{"tagline": "t", "rating": 5}`, ai.ErrSchema},
		{"empty title", `{"title": "  ", "tagline": "t", "rating": 5}`, ai.ErrSchema},
		{"missing tagline", `{"title": "x", "rating": 5}`, ai.ErrSchema},
		{"missing rating", `{"title": "x", "tagline": "t"}`, ai.ErrSchema},
		{"rating not numeric", `{"title": "x", "tagline": "t", "rating": "high"}`, ai.ErrSchema},
		{"rating null", `{"title": "x", "tagline": "t", "rating": null}`, ai.ErrSchema},
		{"rating is a list", `{"title": "x", "tagline": "t", "rating": [7]}`, ai.ErrSchema},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseAnalysis(tc.raw); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseAnalysisAcceptsAnyNumericRating(t *testing.T) {
	// the rubric range is advisory prompt text, not enforced locally
	for _, raw := range []string{
		`{"title": "x", "tagline": "t", "rating": 0}`,
		`{"title": "x", "tagline": "t", "rating": 42}`,
		`{"title": "x", "tagline": "t", "rating": 7.5}`,
	} {
		if _, err := ParseAnalysis(raw); err != nil {
			t.Errorf("ParseAnalysis(%s): %v", raw, err)
		}
	}
}

func TestStripFencesLeavesPlainTextAlone(t *testing.T) {
	if got := StripFences("  hello  "); got != "hello" {
		t.Fatalf("got %q", got)
	}
	if got := StripFences("```json\nbody\n```"); got != "body" {
		t.Fatalf("got %q", got)
	}
}

func TestImagePrompts(t *testing.T) {
	wantOrder := []ideas.ImageType{
		ideas.ImageHero,
		ideas.ImageUIMockup,
		ideas.ImageLifestyle,
		ideas.ImageBlueprint,
		ideas.ImageLogo,
	}
	if len(ImagePrompts) != len(wantOrder) {
		t.Fatalf("expected %d prompts, got %d", len(wantOrder), len(ImagePrompts))
	}
	for i, p := range ImagePrompts {
		if p.Type != wantOrder[i] {
			t.Errorf("position %d: got %s, want %s", i, p.Type, wantOrder[i])
		}
		rendered := p.Render("HydroSense", "a smart water bottle")
		if !strings.Contains(rendered, "HydroSense") {
			t.Errorf("%s prompt must include the title", p.Type)
		}
		if !strings.Contains(rendered, "a smart water bottle") {
			t.Errorf("%s prompt must include the description", p.Type)
		}
		if strings.Contains(rendered, "%s") {
			t.Errorf("%s prompt left a placeholder unexpanded", p.Type)
		}
	}
}

func TestLabelFor(t *testing.T) {
	if got := LabelFor(ideas.ImageUIMockup); got != "App UI Mockup" {
		t.Fatalf("got %q", got)
	}
	if got := LabelFor(ideas.ImageType("x")); got != "x" {
		t.Fatalf("unknown types fall back to the raw value, got %q", got)
	}
}
