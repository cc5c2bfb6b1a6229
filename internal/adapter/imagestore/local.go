// Package imagestore stores uploaded label images on the local filesystem and
// serves them back through a static URL prefix.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mycellar-backend/internal/config"
)

// Store writes images under a root directory. File names are derived from the
// owning user and wine IDs, so a path never contains client-supplied text
// beyond the original extension.
type Store struct {
	dir     string
	baseURL string
}

// New creates the store and its root directory.
func New(cfg config.ImageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Dir returns the root directory, for mounting a static file handler.
func (s *Store) Dir() string { return s.dir }

// Save streams the image to disk and returns its public URL. A wine has at
// most one image per upload; the random element in the name keeps a re-upload
// from colliding with a still-referenced previous file.
func (s *Store) Save(ctx context.Context, userID, wineID uuid.UUID, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s_%s%s", userID, wineID, uuid.New().String()[:8], safeExt(filename))

	f, err := os.CreateTemp(s.dir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	tmp := f.Name()

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close image file: %w", err)
	}

	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("place image file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Remove deletes the file behind a previously returned URL. Unknown URLs and
// already-deleted files are not errors.
func (s *Store) Remove(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := path.Base(url)
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// safeExt keeps a short, lowercase extension from the uploaded name and drops
// anything suspicious.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
