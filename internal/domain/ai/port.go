package ai

import (
	"context"
	"fmt"
	"io"

	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Analyzer evaluates a raw idea transcript into a structured analysis.
type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (*ideas.Analysis, error)
}

// ImageGenerator renders one prompt into raw image bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// ImagePrompt is one of the fixed prompt templates, parameterized by the
// analysis title and the original transcript.
type ImagePrompt struct {
	Type   ideas.ImageType
	Label  string
	Format string // two %s verbs: title, description
}

func (p ImagePrompt) Render(title, description string) string {
	return fmt.Sprintf(p.Format, title, description)
}
