package usecase_test

import (
	"context"
	"errors"
	"testing"

	"item-catalog/internal/item"
	"item-catalog/internal/item/photostore"
	repo "item-catalog/internal/item/repository"
	"item-catalog/internal/item/usecase"
)

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	existing := item.Item{
		ID:          "item-1",
		Title:       "Chair",
		Description: "Wooden",
		PhotoURL:    "/uploads/old.jpg",
	}

	echoRepo := func(existing item.Item, gotOpt *repo.UpdateItemOptions) *mockRepo {
		return &mockRepo{
			getOneFunc: func(opt repo.GetOneItemOptions) (item.Item, error) {
				if opt.ID == existing.ID {
					return existing, nil
				}
				return item.Item{}, nil
			},
			updateFunc: func(opt repo.UpdateItemOptions) (item.Item, error) {
				*gotOpt = opt
				it := item.Item{ID: opt.ID, Title: opt.Title, Description: opt.Description}
				if opt.PhotoURL != nil {
					it.PhotoURL = *opt.PhotoURL
				}
				return it, nil
			},
		}
	}

	t.Run("not found", func(t *testing.T) {
		r := &mockRepo{} // GetOneItem returns zero value
		uc := usecase.New(r, &mockStore{}, &mockLogger{})

		_, err := uc.Update(ctx, item.UpdateItemInput{ID: "missing"})
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("coalesces partial fields", func(t *testing.T) {
		var gotOpt repo.UpdateItemOptions
		r := echoRepo(existing, &gotOpt)
		uc := usecase.New(r, &mockStore{}, &mockLogger{})

		out, err := uc.Update(ctx, item.UpdateItemInput{ID: "item-1", Title: "Armchair"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotOpt.Title != "Armchair" {
			t.Errorf("expected new title, got %s", gotOpt.Title)
		}
		if gotOpt.Description != "Wooden" {
			t.Errorf("expected existing description kept, got %s", gotOpt.Description)
		}
		if out.Item.PhotoURL != "/uploads/old.jpg" {
			t.Errorf("expected photo untouched, got %s", out.Item.PhotoURL)
		}
		if len(out.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", out.Warnings)
		}
	})

	t.Run("remove photo", func(t *testing.T) {
		var gotOpt repo.UpdateItemOptions
		r := echoRepo(existing, &gotOpt)
		s := &mockStore{}
		uc := usecase.New(r, s, &mockLogger{})

		out, err := uc.Update(ctx, item.UpdateItemInput{ID: "item-1", RemovePhoto: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if gotOpt.PhotoURL == nil || *gotOpt.PhotoURL != "" {
			t.Errorf("expected cleared photo url, got %v", gotOpt.PhotoURL)
		}
		if len(s.deleted) != 1 || s.deleted[0] != "/uploads/old.jpg" {
			t.Errorf("expected old photo deleted, got %v", s.deleted)
		}
		if out.Item.HasPhoto() {
			t.Errorf("expected no photo on output, got %s", out.Item.PhotoURL)
		}
	})

	t.Run("remove photo survives file delete failure", func(t *testing.T) {
		var gotOpt repo.UpdateItemOptions
		r := echoRepo(existing, &gotOpt)
		s := &mockStore{
			deleteFunc: func(ref string) error { return errors.New("disk gone") },
		}
		uc := usecase.New(r, s, &mockLogger{})

		out, err := uc.Update(ctx, item.UpdateItemInput{ID: "item-1", RemovePhoto: true})
		if err != nil {
			t.Fatalf("expected update to succeed, got %v", err)
		}
		if gotOpt.PhotoURL == nil || *gotOpt.PhotoURL != "" {
			t.Errorf("expected cleared photo url despite delete failure, got %v", gotOpt.PhotoURL)
		}
		if len(out.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", out.Warnings)
		}
	})

	t.Run("replace photo", func(t *testing.T) {
		var gotOpt repo.UpdateItemOptions
		r := echoRepo(existing, &gotOpt)
		s := &mockStore{
			saveFunc: func(data []byte) (string, error) {
				return "/uploads/new.jpg", nil
			},
		}
		uc := usecase.New(r, s, &mockLogger{})

		out, err := uc.Update(ctx, item.UpdateItemInput{ID: "item-1", Photo: []byte("img")})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(s.deleted) != 1 || s.deleted[0] != "/uploads/old.jpg" {
			t.Errorf("expected old photo deleted, got %v", s.deleted)
		}
		if gotOpt.PhotoURL == nil || *gotOpt.PhotoURL != "/uploads/new.jpg" {
			t.Errorf("expected new photo url, got %v", gotOpt.PhotoURL)
		}
		if out.Item.PhotoURL != "/uploads/new.jpg" {
			t.Errorf("expected new photo url on output, got %s", out.Item.PhotoURL)
		}
	})

	t.Run("remove wins over replace", func(t *testing.T) {
		var gotOpt repo.UpdateItemOptions
		r := echoRepo(existing, &gotOpt)
		s := &mockStore{}
		uc := usecase.New(r, s, &mockLogger{})

		_, err := uc.Update(ctx, item.UpdateItemInput{
			ID:          "item-1",
			Photo:       []byte("img"),
			RemovePhoto: true,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(s.saved) != 0 {
			t.Errorf("expected no save when removing, got %d", len(s.saved))
		}
		if gotOpt.PhotoURL == nil || *gotOpt.PhotoURL != "" {
			t.Errorf("expected cleared photo url, got %v", gotOpt.PhotoURL)
		}
	})

	t.Run("invalid replacement aborts update", func(t *testing.T) {
		updated := false
		r := &mockRepo{
			getOneFunc: func(opt repo.GetOneItemOptions) (item.Item, error) {
				return existing, nil
			},
			updateFunc: func(opt repo.UpdateItemOptions) (item.Item, error) {
				updated = true
				return item.Item{}, nil
			},
		}
		s := &mockStore{
			saveFunc: func(data []byte) (string, error) {
				return "", photostore.ErrNotImage
			},
		}
		uc := usecase.New(r, s, &mockLogger{})

		_, err := uc.Update(ctx, item.UpdateItemInput{ID: "item-1", Photo: []byte("junk")})
		if !errors.Is(err, item.ErrPhotoProcessing) {
			t.Fatalf("expected ErrPhotoProcessing, got %v", err)
		}
		if updated {
			t.Error("expected no record update after photo failure")
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		r := &mockRepo{} // DeleteItem returns zero value
		uc := usecase.New(r, &mockStore{}, &mockLogger{})

		_, err := uc.Delete(ctx, "missing")
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("with photo", func(t *testing.T) {
		r := &mockRepo{
			deleteFunc: func(id string) (item.Item, error) {
				return item.Item{ID: id, PhotoURL: "/uploads/gone.jpg"}, nil
			},
		}
		s := &mockStore{}
		uc := usecase.New(r, s, &mockLogger{})

		out, err := uc.Delete(ctx, "item-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(s.deleted) != 1 || s.deleted[0] != "/uploads/gone.jpg" {
			t.Errorf("expected photo file deleted, got %v", s.deleted)
		}
		if len(out.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", out.Warnings)
		}
	})

	t.Run("photo cleanup failure is a warning", func(t *testing.T) {
		r := &mockRepo{
			deleteFunc: func(id string) (item.Item, error) {
				return item.Item{ID: id, PhotoURL: "/uploads/gone.jpg"}, nil
			},
		}
		s := &mockStore{
			deleteFunc: func(ref string) error { return errors.New("disk gone") },
		}
		uc := usecase.New(r, s, &mockLogger{})

		out, err := uc.Delete(ctx, "item-1")
		if err != nil {
			t.Fatalf("expected delete to succeed, got %v", err)
		}
		if len(out.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", out.Warnings)
		}
	})

	t.Run("without photo skips store", func(t *testing.T) {
		r := &mockRepo{
			deleteFunc: func(id string) (item.Item, error) {
				return item.Item{ID: id}, nil
			},
		}
		s := &mockStore{}
		uc := usecase.New(r, s, &mockLogger{})

		if _, err := uc.Delete(ctx, "item-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(s.deleted) != 0 {
			t.Errorf("expected no store delete, got %v", s.deleted)
		}
	})
}
