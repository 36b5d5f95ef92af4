package usecase

import (
	"context"
	"fmt"
	"path"

	"item-catalog/internal/item"
)

// Reconcile deletes stored photo files that no item references (orphans).
// The filesystem listing and the repository listing are separate snapshots;
// a file uploaded between the two could be misidentified, so callers should
// schedule this in quiet windows. Per-file failures do not stop the sweep.
func (uc *implUseCase) Reconcile(ctx context.Context) (item.ReconcileOutput, error) {
	files, err := uc.photos.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reconcile List: %v", err)
		return item.ReconcileOutput{}, err
	}

	urls, err := uc.repo.ListPhotoURLs(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reconcile ListPhotoURLs: %v", err)
		return item.ReconcileOutput{}, err
	}

	referenced := make(map[string]bool, len(urls))
	for _, url := range urls {
		if name := path.Base(url); name != "" && name != "." {
			referenced[name] = true
		}
	}

	var out item.ReconcileOutput
	for _, name := range files {
		if referenced[name] {
			continue
		}
		if err := uc.photos.Delete(ctx, name); err != nil {
			uc.l.Warnf(ctx, "uc.Reconcile delete orphan %s: %v", name, err)
			out.Warnings = append(out.Warnings, fmt.Sprintf("failed to delete orphan %s", name))
			continue
		}
		out.Deleted = append(out.Deleted, name)
	}

	uc.l.Infof(ctx, "uc.Reconcile: %d orphan file(s) deleted", len(out.Deleted))
	return out, nil
}
