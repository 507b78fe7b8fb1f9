package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(3, 1, ColorWhite)
	fb.SetPixel(9, 9, ColorWhite) // out of bounds, ignored

	if got := fb.GetPixel(3, 1); got != ColorWhite {
		t.Errorf("pixel = %v, want white", got)
	}
	if got := fb.GetPixel(-1, 0); got.A != 0 {
		t.Errorf("out of bounds pixel = %v, want transparent", got)
	}
	if a := fb.Aspect(); a != 2 {
		t.Errorf("aspect = %v, want 2", a)
	}
}

func TestScaled(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(2, 1, ColorAmber)

	img := fb.Scaled(4)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", b)
	}
	if got := img.RGBAAt(11, 7); got != ColorAmber {
		t.Errorf("scaled corner = %v, want amber", got)
	}
	if got := img.RGBAAt(7, 3); got == ColorAmber {
		t.Error("neighboring block should not be amber")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	fb := NewFramebuffer(8, 6)
	fb.Clear(ColorAmber)

	pngPath := filepath.Join(dir, "frame.png")
	if err := fb.Save(pngPath, 2); err != nil {
		t.Fatalf("Save png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("png bounds = %v, want 16x12", b)
	}

	webpPath := filepath.Join(dir, "frame.webp")
	if err := fb.Save(webpPath, 1); err != nil {
		t.Fatalf("Save webp: %v", err)
	}
	if info, err := os.Stat(webpPath); err != nil || info.Size() == 0 {
		t.Errorf("webp not written: %v", err)
	}

	if err := fb.Save(filepath.Join(dir, "frame.bmp"), 1); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestSaveRemovesFileOnEncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	fb := NewFramebuffer(0, 0)

	if err := fb.Save(path, 1); err == nil {
		t.Fatal("expected error encoding an empty framebuffer")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial file left behind: stat err = %v", err)
	}
}
