package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

type IdeaRepository struct{ db *sql.DB }

func NewIdeaRepository(db *sql.DB) *IdeaRepository { return &IdeaRepository{db: db} }

// Upsert insert/update Idea record; conflict keeps the original seq
func (r *IdeaRepository) Upsert(ctx context.Context, idea *domain.Idea) error {
	if idea == nil || idea.ID == "" {
		return domain.ErrMissingID
	}
	analysisJSON, err := json.Marshal(idea.Analysis)
	if err != nil {
		return err
	}
	imagesJSON, err := json.Marshal(idea.Images)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO ideas (id, transcript, analysis, images, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE SET
 transcript = EXCLUDED.transcript,
 analysis = EXCLUDED.analysis,
 images = EXCLUDED.images,
 created_at = EXCLUDED.created_at;`

	_, err = r.db.ExecContext(ctx, q,
		idea.ID, idea.Transcript, analysisJSON, imagesJSON, idea.CreatedAt,
	)
	return err
}

func (r *IdeaRepository) Get(ctx context.Context, id domain.ID) (*domain.Idea, error) {
	const q = `
SELECT id, transcript, analysis, images, created_at
FROM ideas WHERE id=$1 LIMIT 1;`
	idea, err := scanIdea(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return idea, err
}

func (r *IdeaRepository) List(ctx context.Context) ([]*domain.Idea, error) {
	const q = `
SELECT id, transcript, analysis, images, created_at
FROM ideas ORDER BY seq DESC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, idea)
	}
	return out, rows.Err()
}

func (r *IdeaRepository) Delete(ctx context.Context, id domain.ID) (*domain.Idea, error) {
	removed, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM ideas WHERE id=$1;`, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return removed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*domain.Idea, error) {
	var idea domain.Idea
	var analysisJSON, imagesJSON []byte
	if err := row.Scan(&idea.ID, &idea.Transcript, &analysisJSON, &imagesJSON, &idea.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(analysisJSON, &idea.Analysis); err != nil {
		return nil, err
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &idea.Images); err != nil {
			return nil, err
		}
	}
	return &idea, nil
}
