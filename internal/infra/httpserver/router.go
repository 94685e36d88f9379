package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	appai "github.com/bryanwahyu/ideaforge/internal/application/ai"
	appideas "github.com/bryanwahyu/ideaforge/internal/application/ideas"
	domai "github.com/bryanwahyu/ideaforge/internal/domain/ai"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/prompt"
	"github.com/bryanwahyu/ideaforge/internal/middleware"
)

// maxAudioBytes caps one uploaded voice recording.
const maxAudioBytes = 32 << 20

type Router struct {
	ideasSvc *appideas.Service
	aiSvc    *appai.Service
	log      *logrus.Logger
}

func NewRouter(ideasSvc *appideas.Service, aiSvc *appai.Service, log *logrus.Logger, checkers map[string]middleware.HealthChecker) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Router{ideasSvc: ideasSvc, aiSvc: aiSvc, log: log}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware(log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 10))

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/analyze", r.wrap(r.handleAnalyze))
	mux.Post("/transcribe", r.wrap(r.handleTranscribe))
	mux.Post("/generate-image", r.wrap(r.handleGenerateImage))

	mux.Route("/ideas", func(rt chi.Router) {
		rt.Get("/", r.wrap(r.handleList))
		rt.Post("/", r.wrap(r.handleSave))
		rt.Post("/process", r.wrap(r.handleProcess))
		rt.Get("/{id}", r.wrap(r.handleGet))
		rt.Delete("/{id}", r.wrap(r.handleDelete))
	})

	mux.Get("/images/*", r.wrap(r.handleImage))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps domain sentinel errors to status codes. Upstream and IO failures
// answer with a generic body; the cause is only logged.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "not found")
		case errors.Is(err, domain.ErrPathEscape):
			writeError(w, http.StatusForbidden, "invalid path")
		case errors.Is(err, domai.ErrQuotaExceeded):
			writeError(w, http.StatusTooManyRequests, "ai quota exceeded")
		default:
			r.log.WithError(err).WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
			}).Error("request failed")
			writeError(w, http.StatusInternalServerError, "failed to process your idea")
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /analyze
// Body: {"transcript": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyTranscript
	}
	if err := middleware.ValidateTranscript(body.Transcript); err != nil {
		return err
	}

	analysis, err := r.aiSvc.Analyze(req.Context(), body.Transcript)
	if err != nil {
		return err
	}
	return writeJSON(w, analysis)
}

// POST /transcribe
// Multipart form, field "audio"
func (r *Router) handleTranscribe(w http.ResponseWriter, req *http.Request) error {
	if err := req.ParseMultipartForm(maxAudioBytes); err != nil {
		return domain.ErrMissingAudio
	}
	f, hdr, err := req.FormFile("audio")
	if err != nil {
		return domain.ErrMissingAudio
	}
	defer f.Close()

	text, err := r.aiSvc.Transcribe(req.Context(), hdr.Filename, f)
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"text": text})
}

// POST /generate-image
// Body: {"prompt": "...", "type": "hero", "label": "...", "ideaId": "..."}
func (r *Router) handleGenerateImage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Prompt string `json:"prompt"`
		Type   string `json:"type"`
		Label  string `json:"label"`
		IdeaID string `json:"ideaId"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyPrompt
	}
	if body.Prompt == "" {
		return domain.ErrEmptyPrompt
	}
	if err := middleware.ValidateIdeaID(body.IdeaID); err != nil {
		return err
	}
	if err := middleware.ValidateImageType(body.Type); err != nil {
		return err
	}
	if body.Label == "" {
		body.Label = prompt.LabelFor(domain.ImageType(body.Type))
	}

	img, err := r.aiSvc.GenerateImage(req.Context(), appai.GenerateImageCommand{
		Prompt: body.Prompt,
		Type:   domain.ImageType(body.Type),
		Label:  body.Label,
		IdeaID: domain.ID(body.IdeaID),
	})
	if err != nil {
		middleware.IncrementImagesFailed()
		return err
	}
	middleware.IncrementImagesGenerated()
	return writeJSON(w, img)
}

// GET /ideas
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	list, err := r.ideasSvc.List(req.Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Idea{}
	}
	return writeJSON(w, list)
}

// POST /ideas (upsert semantics, body must include id)
func (r *Router) handleSave(w http.ResponseWriter, req *http.Request) error {
	var idea domain.Idea
	if err := json.NewDecoder(req.Body).Decode(&idea); err != nil {
		return domain.ErrMissingID
	}
	if err := middleware.ValidateIdeaID(string(idea.ID)); err != nil {
		return err
	}
	if err := r.ideasSvc.Save(req.Context(), &idea); err != nil {
		return err
	}
	return writeJSON(w, &idea)
}

// POST /ideas/process
// Body: {"transcript": "..."} — runs the whole creation flow server-side.
func (r *Router) handleProcess(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Transcript string `json:"transcript"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyTranscript
	}
	if err := middleware.ValidateTranscript(body.Transcript); err != nil {
		return err
	}

	idea, err := r.ideasSvc.Process(req.Context(),
		appideas.ProcessCommand{Transcript: body.Transcript},
		func(stage string, current, total int) {
			r.log.WithFields(logrus.Fields{
				"stage":   stage,
				"current": current,
				"total":   total,
			}).Info("processing idea")
		})
	if err != nil {
		return err
	}
	middleware.IncrementIdeasCreated()
	return writeJSON(w, idea)
}

// GET /ideas/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	idea, err := r.ideasSvc.Get(req.Context(), domain.ID(chi.URLParam(req, "id")))
	if err != nil {
		return err
	}
	return writeJSON(w, idea)
}

// DELETE /ideas/{id}
func (r *Router) handleDelete(w http.ResponseWriter, req *http.Request) error {
	if err := r.ideasSvc.Delete(req.Context(), domain.ID(chi.URLParam(req, "id"))); err != nil {
		return err
	}
	return writeJSON(w, map[string]bool{"success": true})
}

// GET /images/{...path}
func (r *Router) handleImage(w http.ResponseWriter, req *http.Request) error {
	rel := chi.URLParam(req, "*")
	data, contentType, err := r.ideasSvc.OpenImage(req.Context(), rel)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", contentType)
	// file names encode identity, so serve as immutable
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, err = w.Write(data)
	return err
}
