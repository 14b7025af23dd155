package recolor_test

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/glizzus/assetgen/internal/recolor"
)

func spriteSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 66, G: 134, B: 244, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 25, G: 83, B: 166, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 66, G: 134, B: 244, A: 0})
	img.SetNRGBA(3, 0, color.NRGBA{R: 255, G: 224, B: 189, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{R: 41, G: 108, B: 211, A: 200})
	return img
}

func assertSamePixels(t *testing.T, want, got image.Image) {
	t.Helper()
	if want.Bounds() != got.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			w := color.NRGBAModel.Convert(want.At(x, y)).(color.NRGBA)
			g := color.NRGBAModel.Convert(got.At(x, y)).(color.NRGBA)
			if w.A == 0 && g.A == 0 {
				continue
			}
			if w != g {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites", "character-1-spritesheet.png")
	img := spriteSheet()

	size, err := recolor.Save(path, img)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat saved file: %v", err)
	}
	if info.Size() != size {
		t.Errorf("Save reported %d bytes, file has %d", size, info.Size())
	}

	loaded, err := recolor.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assertSamePixels(t, img, loaded)
}

func TestSaveLoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opaque.bmp")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := range 3 {
		for x := range 3 {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 80), B: 40, A: 255})
		}
	}

	if _, err := recolor.Save(path, img); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := recolor.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assertSamePixels(t, img, loaded)
}

func TestSaveUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.tiff")
	_, err := recolor.Save(path, spriteSheet())
	if !errors.Is(err, recolor.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file to be created, stat returned %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.png"), garbage} {
		if _, err := recolor.Load(path); err == nil {
			t.Errorf("Load(%q) expected error, got none", path)
		}
	}
}
