package ideas

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	List(ctx context.Context) ([]*Idea, error)
	Get(ctx context.Context, id ID) (*Idea, error)
	Upsert(ctx context.Context, idea *Idea) error
	// Delete removes the idea and returns the removed record so callers
	// can clean up the image files it references.
	Delete(ctx context.Context, id ID) (*Idea, error)
}

// ImageStore port (interface untuk penyimpanan gambar)
type ImageStore interface {
	// Save writes data under the deterministic name {id}-{type}.png and
	// returns the path relative to the storage root.
	Save(ctx context.Context, id ID, imgType ImageType, data []byte) (string, error)
	// Open resolves relPath against the storage root and returns the bytes
	// plus a content type derived from the file extension. Paths that
	// escape the root fail with ErrPathEscape.
	Open(ctx context.Context, relPath string) ([]byte, string, error)
	Remove(ctx context.Context, relPath string) error
}
