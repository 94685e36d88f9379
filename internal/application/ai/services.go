package ai

import (
	"context"
	"io"
	"strings"

	domai "github.com/bryanwahyu/ideaforge/internal/domain/ai"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Service implements the AI-facing use-cases: analyze a transcript, generate
// and store one image, transcribe recorded audio.
type Service struct {
	Analyzer    domai.Analyzer
	Generator   domai.ImageGenerator
	Transcriber domai.Transcriber
	Images      ideas.ImageStore
}

func (s *Service) Analyze(ctx context.Context, transcript string) (*ideas.Analysis, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, ideas.ErrEmptyTranscript
	}
	return s.Analyzer.Analyze(ctx, transcript)
}

// Command untuk generate satu image
type GenerateImageCommand struct {
	Prompt string
	Type   ideas.ImageType
	Label  string
	IdeaID ideas.ID
}

// GenerateImage renders the prompt, stores the payload under the idea's
// deterministic file name and returns the assembled image record.
func (s *Service) GenerateImage(ctx context.Context, cmd GenerateImageCommand) (*ideas.Image, error) {
	if strings.TrimSpace(cmd.Prompt) == "" {
		return nil, ideas.ErrEmptyPrompt
	}
	if cmd.IdeaID == "" {
		return nil, ideas.ErrMissingID
	}
	if !ideas.KnownImageType(cmd.Type) {
		return nil, ideas.ErrInvalidImageType
	}

	data, err := s.Generator.GenerateImage(ctx, cmd.Prompt)
	if err != nil {
		return nil, err
	}
	relPath, err := s.Images.Save(ctx, cmd.IdeaID, cmd.Type, data)
	if err != nil {
		return nil, err
	}

	return &ideas.Image{
		Type:     cmd.Type,
		Label:    cmd.Label,
		FilePath: relPath,
		Prompt:   cmd.Prompt,
	}, nil
}

func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	return s.Transcriber.Transcribe(ctx, filename, audio)
}
