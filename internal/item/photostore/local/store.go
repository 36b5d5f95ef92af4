package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"item-catalog/internal/item/photostore"
	"item-catalog/pkg/imaging"
)

// storedExt is the extension for the fixed stored encoding. Uploads are
// re-encoded regardless of their original format, and the stored name is
// decoupled from the uploaded filename.
const storedExt = ".jpg"

// Save normalizes the upload (cover-fit square, fixed encoding) and writes it
// under a fresh UUID name. Returns the public reference path.
func (s *implStore) Save(ctx context.Context, data []byte) (string, error) {
	processed, err := imaging.Process(bytes.NewReader(data), imaging.Options{
		Dimension: s.cfg.Dimension,
		Quality:   s.cfg.Quality,
	})
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return "", fmt.Errorf("%w: %v", photostore.ErrNotImage, err)
		}
		return "", fmt.Errorf("%w: %v", photostore.ErrStorage, err)
	}

	filename := uuid.NewString() + storedExt
	if err := os.WriteFile(filepath.Join(s.cfg.Dir, filename), processed, 0o644); err != nil {
		s.l.Errorf(ctx, "photostore/local.Save write %s: %v", filename, err)
		return "", fmt.Errorf("%w: %v", photostore.ErrStorage, err)
	}

	return path.Join(s.cfg.PublicPrefix, filename), nil
}

// Delete removes the referenced file. Accepts a public reference path or a
// bare filename; a file that is already gone is a success (idempotent).
func (s *implStore) Delete(ctx context.Context, ref string) error {
	filename := path.Base(ref)
	if filename == "." || filename == "/" || filename == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.cfg.Dir, filename))
	if err != nil && !os.IsNotExist(err) {
		s.l.Errorf(ctx, "photostore/local.Delete %s: %v", filename, err)
		return fmt.Errorf("%w: %v", photostore.ErrStorage, err)
	}
	return nil
}

// List returns the bare filenames of every stored photo.
func (s *implStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		s.l.Errorf(ctx, "photostore/local.List: %v", err)
		return nil, fmt.Errorf("%w: %v", photostore.ErrStorage, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
