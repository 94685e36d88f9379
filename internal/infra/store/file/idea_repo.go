package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// Repository persists the whole idea collection as one JSON array file.
// Every read and write round-trips the full document; a process-wide mutex
// serializes the read-modify-write cycle. Safe for one process only.
type Repository struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Repository {
	return &Repository{path: path}
}

// load baca seluruh koleksi; file hilang/rusak dianggap koleksi kosong
func (r *Repository) load() []*domain.Idea {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil
	}
	var out []*domain.Idea
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func (r *Repository) save(all []*domain.Idea) error {
	if all == nil {
		all = []*domain.Idea{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// List returns the collection in stored order (newest ideas are prepended).
func (r *Repository) List(ctx context.Context) ([]*domain.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *Repository) Get(ctx context.Context, id domain.ID) (*domain.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, idea := range r.load() {
		if idea.ID == id {
			return idea, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Upsert replaces an existing record in place or prepends a new one.
func (r *Repository) Upsert(ctx context.Context, idea *domain.Idea) error {
	if idea == nil || idea.ID == "" {
		return domain.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	replaced := false
	for i, existing := range all {
		if existing.ID == idea.ID {
			all[i] = idea
			replaced = true
			break
		}
	}
	if !replaced {
		all = append([]*domain.Idea{idea}, all...)
	}
	return r.save(all)
}

func (r *Repository) Delete(ctx context.Context, id domain.ID) (*domain.Idea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	idx := -1
	for i, existing := range all {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	removed := all[idx]
	all = append(all[:idx], all[idx+1:]...)
	if err := r.save(all); err != nil {
		return nil, err
	}
	return removed, nil
}
