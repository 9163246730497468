package probe

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestDimensions_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 219, 298))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 219 || h != 298 {
		t.Errorf("got %dx%d, want 219x298", w, h)
	}
}

func TestDimensions_BMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, image.NewNRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 40 || h != 30 {
		t.Errorf("got %dx%d, want 40x30", w, h)
	}
}

func TestDimensions_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Dimensions(path); err == nil {
		t.Error("expected error for non-image content")
	}
}

func TestDimensions_MissingFile(t *testing.T) {
	if _, _, err := Dimensions(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
