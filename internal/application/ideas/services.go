package ideas

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/ideaforge/internal/application"
	appai "github.com/bryanwahyu/ideaforge/internal/application/ai"
	domai "github.com/bryanwahyu/ideaforge/internal/domain/ai"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Service implements use-cases untuk Idea
// Service is designed to be used concurrently and is thread-safe
type Service struct {
	Repo    domain.Repository
	Images  domain.ImageStore
	AI      *appai.Service
	Prompts []domai.ImagePrompt
	Clock   application.Clock
	Log     *logrus.Logger
}

// Stage names reported while one creation attempt runs.
const (
	StageTranscribing     = "transcribing"
	StageAnalyzing        = "analyzing"
	StageGeneratingImages = "generating-images"
)

// ProgressFunc receives coarse progress: for the image stage current/total
// count dispatched generations, otherwise both are zero.
type ProgressFunc func(stage string, current, total int)

// Command untuk proses satu idea dari input mentah
type ProcessCommand struct {
	Transcript string
	Audio      []byte // recorded audio; used when Transcript is empty
	AudioName  string
}

// NewID composes the caller-supplied record id: prefix + timestamp + random suffix.
func (s *Service) NewID() domain.ID {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return domain.ID(fmt.Sprintf("idea-%d-%s", s.Clock.Now().UnixMilli(), suffix))
}

// Process drives one creation attempt end to end: transcribe (voice input
// only) -> analyze -> generate each of the fixed prompts sequentially ->
// assemble -> persist. A failed image generation is logged and skipped; every
// other stage failure aborts the attempt. Nothing is retried.
func (s *Service) Process(ctx context.Context, cmd ProcessCommand, progress ProgressFunc) (*domain.Idea, error) {
	if progress == nil {
		progress = func(string, int, int) {}
	}

	transcript := cmd.Transcript
	if strings.TrimSpace(transcript) == "" && len(cmd.Audio) > 0 {
		progress(StageTranscribing, 0, 0)
		text, err := s.AI.Transcribe(ctx, cmd.AudioName, bytes.NewReader(cmd.Audio))
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, domai.ErrNoSpeech
		}
		transcript = text
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, domain.ErrEmptyTranscript
	}

	id := s.NewID()

	progress(StageAnalyzing, 0, 0)
	analysis, err := s.AI.Analyze(ctx, transcript)
	if err != nil {
		return nil, err
	}

	total := len(s.Prompts)
	images := make([]domain.Image, 0, total)
	for i, p := range s.Prompts {
		img, err := s.AI.GenerateImage(ctx, appai.GenerateImageCommand{
			Prompt: p.Render(analysis.Title, transcript),
			Type:   p.Type,
			Label:  p.Label,
			IdeaID: id,
		})
		progress(StageGeneratingImages, i+1, total)
		if err != nil {
			// partial-success policy: a flaky image model must not
			// block saving the idea with its analysis
			s.logger().WithError(err).WithFields(logrus.Fields{
				"idea_id": id,
				"type":    p.Type,
			}).Warn("image generation skipped")
			continue
		}
		images = append(images, *img)
	}

	idea := &domain.Idea{
		ID:         id,
		Transcript: transcript,
		Analysis:   *analysis,
		Images:     images,
		CreatedAt:  s.Clock.Now(),
	}
	if err := s.Repo.Upsert(ctx, idea); err != nil {
		return nil, err
	}
	return idea, nil
}

//
// ==== CRUD USE CASES ====
//

func (s *Service) List(ctx context.Context) ([]*domain.Idea, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Idea, error) {
	return s.Repo.Get(ctx, id)
}

// Save upserts a caller-assembled record (the UI posts the finished idea back).
func (s *Service) Save(ctx context.Context, idea *domain.Idea) error {
	if idea == nil || idea.ID == "" {
		return domain.ErrMissingID
	}
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = s.Clock.Now()
	}
	return s.Repo.Upsert(ctx, idea)
}

// Delete removes the record and best-effort-deletes its image files.
func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	for _, img := range removed.Images {
		if img.FilePath == "" {
			continue
		}
		if err := s.Images.Remove(ctx, img.FilePath); err != nil {
			s.logger().WithError(err).WithField("file", img.FilePath).Warn("image cleanup failed")
		}
	}
	return nil
}

// OpenImage reads one stored image for serving.
func (s *Service) OpenImage(ctx context.Context, relPath string) ([]byte, string, error) {
	return s.Images.Open(ctx, relPath)
}

func (s *Service) logger() *logrus.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}
