package http

import (
	"item-catalog/internal/item"
	"item-catalog/pkg/log"
)

// Config holds the boundary limits the handler enforces.
type Config struct {
	MaxPhotoBytes int64 // largest accepted upload
	DefaultLimit  int   // page size when the query omits limit
}

type handler struct {
	l   log.Logger
	uc  item.UseCase
	cfg Config
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, cfg Config) *handler {
	if cfg.MaxPhotoBytes <= 0 {
		cfg.MaxPhotoBytes = 5 * 1024 * 1024
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
