package usecase

import (
	"context"
	"errors"
	"fmt"

	"item-catalog/internal/item"
	"item-catalog/internal/item/photostore"
	repo "item-catalog/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing Item, coordinating the photo file with the
// record. Branches, in order:
//  1. RemovePhoto set and a photo exists: delete the old file (best-effort)
//     and clear the reference.
//  2. New photo bytes: delete the old file if any (best-effort), save the new
//     one; a save failure aborts the whole update with no record change.
//  3. Neither: the reference stays untouched.
//
// Old-file deletion failures never abort the update: the repository record
// is the source of truth and stray files are recoverable via Reconcile. They
// are logged and reported in the output's Warnings.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	var warnings []string
	photoURL := existing.PhotoURL

	switch {
	case input.RemovePhoto && existing.HasPhoto():
		if delErr := uc.photos.Delete(ctx, existing.PhotoURL); delErr != nil {
			uc.l.Warnf(ctx, "uc.Update delete old photo %s: %v", existing.PhotoURL, delErr)
			warnings = append(warnings, fmt.Sprintf("failed to delete old photo %s", existing.PhotoURL))
		}
		photoURL = ""

	case len(input.Photo) > 0:
		if existing.HasPhoto() {
			if delErr := uc.photos.Delete(ctx, existing.PhotoURL); delErr != nil {
				uc.l.Warnf(ctx, "uc.Update delete old photo %s: %v", existing.PhotoURL, delErr)
				warnings = append(warnings, fmt.Sprintf("failed to delete old photo %s", existing.PhotoURL))
			}
		}
		url, saveErr := uc.photos.Save(ctx, input.Photo)
		if saveErr != nil {
			uc.l.Errorf(ctx, "uc.Update Save: %v", saveErr)
			if errors.Is(saveErr, photostore.ErrNotImage) {
				return item.UpdateItemOutput{}, fmt.Errorf("%w: %v", item.ErrPhotoProcessing, saveErr)
			}
			return item.UpdateItemOutput{}, saveErr
		}
		photoURL = url
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Title:       uc.coalesce(input.Title, existing.Title),
		Description: uc.coalesce(input.Description, existing.Description),
		PhotoURL:    &photoURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if updated.ID == "" {
		// Row vanished between lookup and update.
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: updated, Warnings: warnings}, nil
}

// Delete removes an Item and, best-effort, its photo file. Returns
// ErrItemNotFound when no record existed; a photo-cleanup failure is only a
// warning, never an operation failure.
func (uc *implUseCase) Delete(ctx context.Context, id string) (item.DeleteItemOutput, error) {
	deleted, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return item.DeleteItemOutput{}, err
	}
	if deleted.ID == "" {
		return item.DeleteItemOutput{}, item.ErrItemNotFound
	}

	var warnings []string
	if deleted.HasPhoto() {
		if delErr := uc.photos.Delete(ctx, deleted.PhotoURL); delErr != nil {
			uc.l.Warnf(ctx, "uc.Delete delete photo %s: %v", deleted.PhotoURL, delErr)
			warnings = append(warnings, fmt.Sprintf("failed to delete photo %s", deleted.PhotoURL))
		}
	}

	uc.l.Infof(ctx, "uc.Delete: item removed: %s", deleted.ID)
	return item.DeleteItemOutput{Warnings: warnings}, nil
}
