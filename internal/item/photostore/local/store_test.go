package local

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"item-catalog/internal/item/photostore"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func newTestStore(t *testing.T) (photostore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(Config{
		Dir:          dir,
		PublicPrefix: "/uploads",
		Dimension:    64,
		Quality:      80,
	}, noopLogger{})
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return s, dir
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("valid image", func(t *testing.T) {
		s, dir := newTestStore(t)

		ref, err := s.Save(ctx, testPNG(t, 120, 80))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasPrefix(ref, "/uploads/") || !strings.HasSuffix(ref, ".jpg") {
			t.Errorf("unexpected reference %q", ref)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 file, got %d", len(entries))
		}
		if filepath.Base(ref) != entries[0].Name() {
			t.Errorf("reference %q does not match stored file %q", ref, entries[0].Name())
		}
	})

	t.Run("unique names per save", func(t *testing.T) {
		s, _ := newTestStore(t)
		data := testPNG(t, 32, 32)

		ref1, err := s.Save(ctx, data)
		if err != nil {
			t.Fatal(err)
		}
		ref2, err := s.Save(ctx, data)
		if err != nil {
			t.Fatal(err)
		}
		if ref1 == ref2 {
			t.Errorf("expected distinct names, both %q", ref1)
		}
	})

	t.Run("non-image bytes", func(t *testing.T) {
		s, dir := newTestStore(t)

		_, err := s.Save(ctx, []byte("definitely not a picture"))
		if !errors.Is(err, photostore.ErrNotImage) {
			t.Fatalf("expected ErrNotImage, got %v", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("expected no files written, got %d", len(entries))
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("by reference path", func(t *testing.T) {
		s, dir := newTestStore(t)
		ref, err := s.Save(ctx, testPNG(t, 32, 32))
		if err != nil {
			t.Fatal(err)
		}

		if err := s.Delete(ctx, ref); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 0 {
			t.Errorf("expected file removed, got %d", len(entries))
		}
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		s, _ := newTestStore(t)
		if err := s.Delete(ctx, "/uploads/never-existed.jpg"); err != nil {
			t.Fatalf("expected idempotent delete, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s, dir := newTestStore(t)

	ref, err := s.Save(ctx, testPNG(t, 32, 32))
	if err != nil {
		t.Fatal(err)
	}
	// Subdirectories are skipped.
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(names) != 1 || names[0] != filepath.Base(ref) {
		t.Errorf("expected [%s], got %v", filepath.Base(ref), names)
	}
}
