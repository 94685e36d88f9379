package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "ideas.json"))
}

func testIdea(id string) *domain.Idea {
	return &domain.Idea{
		ID:         domain.ID(id),
		Transcript: "a smart water bottle that tracks hydration",
		Analysis: domain.Analysis{
			Title:   "HydroSense",
			Tagline: "Never miss a sip",
			Rating:  7,
		},
		Images: []domain.Image{
			{Type: domain.ImageHero, Label: "Hero Product", FilePath: id + "-hero.png", Prompt: "p"},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestListMissingFile(t *testing.T) {
	repo := newTestRepo(t)
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestListCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	repo := New(path)
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("corrupt file should read as empty, got %d", len(list))
	}
}

func TestUpsertThenGet(t *testing.T) {
	repo := newTestRepo(t)
	idea := testIdea("idea-1700000000000-abc123def")

	if err := repo.Upsert(context.Background(), idea); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err := repo.Get(context.Background(), idea.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != idea.ID || got.Transcript != idea.Transcript {
		t.Fatalf("got %+v, want %+v", got, idea)
	}
	if got.Analysis.Title != "HydroSense" || got.Analysis.Rating != 7 {
		t.Fatalf("analysis not preserved: %+v", got.Analysis)
	}
	if len(got.Images) != 1 || got.Images[0].Type != domain.ImageHero {
		t.Fatalf("images not preserved: %+v", got.Images)
	}
}

func TestUpsertMissingID(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Upsert(context.Background(), &domain.Idea{})
	if !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("ErrMissingID should be tagged as validation error")
	}
}

func TestNewIdeasArePrepended(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, id := range []string{"idea-1-a", "idea-2-b", "idea-3-c"} {
		if err := repo.Upsert(ctx, testIdea(id)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []domain.ID{"idea-3-c", "idea-2-b", "idea-1-a"}
	if len(list) != len(want) {
		t.Fatalf("expected %d ideas, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestUpsertReplacesInPlace(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, id := range []string{"idea-1-a", "idea-2-b", "idea-3-c"} {
		if err := repo.Upsert(ctx, testIdea(id)); err != nil {
			t.Fatal(err)
		}
	}

	updated := testIdea("idea-2-b")
	updated.Transcript = "updated transcript"
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatal(err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 3 {
		t.Fatalf("replace must not grow the collection, got %d", len(list))
	}
	if list[1].ID != "idea-2-b" || list[1].Transcript != "updated transcript" {
		t.Fatalf("record not replaced in place: %+v", list[1])
	}
}

func TestUpsertIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	idea := testIdea("idea-1-a")

	if err := repo.Upsert(ctx, idea); err != nil {
		t.Fatal(err)
	}
	once, _ := os.ReadFile(repo.path)

	if err := repo.Upsert(ctx, idea); err != nil {
		t.Fatal(err)
	}
	twice, _ := os.ReadFile(repo.path)

	if string(once) != string(twice) {
		t.Fatal("upserting an identical record twice must not change the store")
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	idea := testIdea("idea-1-a")
	if err := repo.Upsert(ctx, idea); err != nil {
		t.Fatal(err)
	}

	removed, err := repo.Delete(ctx, idea.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed.ID != idea.ID || len(removed.Images) != 1 {
		t.Fatalf("removed record should carry its images: %+v", removed)
	}

	if _, err := repo.Get(ctx, idea.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Upsert(ctx, testIdea("idea-1-a")); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.Delete(ctx, "idea-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 1 {
		t.Fatal("failed delete must not mutate the store")
	}
}

func TestListLengthTracksOperations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ids := []string{"idea-1-a", "idea-2-b", "idea-3-c", "idea-4-d"}
	for _, id := range ids {
		if err := repo.Upsert(ctx, testIdea(id)); err != nil {
			t.Fatal(err)
		}
	}
	// duplicate upsert must not count twice
	if err := repo.Upsert(ctx, testIdea("idea-2-b")); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Delete(ctx, "idea-3-c"); err != nil {
		t.Fatal(err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 3 {
		t.Fatalf("expected 4 distinct upserts - 1 delete = 3, got %d", len(list))
	}
}
