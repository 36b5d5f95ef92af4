package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"item-catalog/internal/item"
	"item-catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Item domain
	itemUC        item.UseCase
	maxPhotoBytes int64
	defaultLimit  int
	rateLimitPM   int

	// Static photo serving
	staticDir    string
	staticPrefix string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ItemUseCase   item.UseCase
	MaxPhotoBytes int64
	DefaultLimit  int
	RateLimitPM   int

	StaticDir    string
	StaticPrefix string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		itemUC:        cfg.ItemUseCase,
		maxPhotoBytes: cfg.MaxPhotoBytes,
		defaultLimit:  cfg.DefaultLimit,
		rateLimitPM:   cfg.RateLimitPM,
		staticDir:     cfg.StaticDir,
		staticPrefix:  cfg.StaticPrefix,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.itemUC == nil {
		return errors.New("item use case is required")
	}
	return nil
}
