package local

import (
	"fmt"
	"os"

	"item-catalog/internal/item/photostore"
	"item-catalog/pkg/log"
)

// Config holds the filesystem store parameters.
type Config struct {
	Dir          string // directory photos are written to
	PublicPrefix string // URL prefix the directory is served under, e.g. "/uploads"
	Dimension    int    // square output side length
	Quality      int    // JPEG quality
}

type implStore struct {
	cfg Config
	l   log.Logger
}

// New creates a filesystem-backed photo store. The storage directory is
// created here, once, at startup; creation is idempotent.
func New(cfg Config, l log.Logger) (photostore.Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("photostore/local: dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("photostore/local: creating %s: %w", cfg.Dir, err)
	}
	return &implStore{cfg: cfg, l: l}, nil
}
