package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// DiskStore keeps generated images as {ideaId}-{type}.png files under a
// single root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// FileName is the deterministic name convention; a recurring (id, type) pair
// silently overwrites the previous file.
func FileName(id domain.ID, imgType domain.ImageType) string {
	return fmt.Sprintf("%s-%s.png", id, imgType)
}

func (s *DiskStore) Save(ctx context.Context, id domain.ID, imgType domain.ImageType, data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", err
	}
	name := FileName(id, imgType)
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Open canonicalizes relPath against the root and refuses anything that
// resolves outside it.
func (s *DiskStore) Open(ctx context.Context, relPath string) ([]byte, string, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", err
	}
	return data, ContentTypeByExt(full), nil
}

// Remove deletes one stored image. Missing files are not an error so that
// record deletion stays best-effort.
func (s *DiskStore) Remove(ctx context.Context, relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskStore) resolve(relPath string) (string, error) {
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Join(s.root, filepath.FromSlash(relPath)))
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, rootAbs+string(os.PathSeparator)) {
		return "", domain.ErrPathEscape
	}
	return abs, nil
}

// ContentTypeByExt derives a serving content type purely from the extension.
func ContentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
