package usecase

import (
	"item-catalog/internal/item/photostore"
	"item-catalog/internal/item/repository"
	"item-catalog/pkg/log"
)

// implUseCase is the private implementation of item.UseCase. It is the only
// component that touches both the repository and the photo store, and it owns
// the invariant that a stored photo reference points at an existing file.
type implUseCase struct {
	repo   repository.Repository
	photos photostore.Store
	l      log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, photos photostore.Store, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		photos: photos,
		l:      l,
	}
}
