package usecase

import (
	"context"
	"errors"
	"fmt"

	"item-catalog/internal/item"
	"item-catalog/internal/item/photostore"
	repo "item-catalog/internal/item/repository"
)

// Create stores an optional photo and inserts the new Item. The photo is
// saved first: if processing fails nothing is written to the repository, and
// if the insert fails the written file is removed again so no orphan is left
// behind on the happy path's failure branch.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	var photoURL string
	if len(input.Photo) > 0 {
		url, err := uc.photos.Save(ctx, input.Photo)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create Save: %v", err)
			if errors.Is(err, photostore.ErrNotImage) {
				return item.CreateItemOutput{}, fmt.Errorf("%w: %v", item.ErrPhotoProcessing, err)
			}
			return item.CreateItemOutput{}, err
		}
		photoURL = url
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Title:       input.Title,
		Description: input.Description,
		PhotoURL:    photoURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		if photoURL != "" {
			if delErr := uc.photos.Delete(ctx, photoURL); delErr != nil {
				uc.l.Warnf(ctx, "uc.Create cleanup %s: %v", photoURL, delErr)
			}
		}
		return item.CreateItemOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: item created: %s", created.ID)
	return item.CreateItemOutput{Item: created}, nil
}
