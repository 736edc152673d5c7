package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureFromPixelsFlipsVertically(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test", FormatPNG)

	// 2x2 image: bottom row red, top row blue (GL order, bottom-up).
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // GL row 0 (bottom)
		0, 0, 255, 255, 0, 0, 255, 255, // GL row 1 (top)
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path %q does not end in .png", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	// The GL top row (blue) must be the first image row.
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("top-left pixel = (%d,_,%d), want blue", r>>8, b>>8)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if b != 0 || r == 0 {
		t.Errorf("bottom-left pixel = (%d,_,%d), want red", r>>8, b>>8)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test", FormatPNG)
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureWebP(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot", FormatWebP)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 200
	}

	path, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage() error: %v", err)
	}
	if filepath.Ext(path) != ".webp" {
		t.Errorf("path %q does not end in .webp", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat screenshot: %v", err)
	}
	if info.Size() == 0 {
		t.Error("webp screenshot is empty")
	}
}

func TestUnknownFormatFallsBackToPNG(t *testing.T) {
	for _, format := range []string{"bmp", ""} {
		sc := NewScreenshotCapture(t.TempDir(), "shot", format)
		if sc.format != FormatPNG {
			t.Errorf("NewScreenshotCapture(%q): format = %q, want fallback to png", format, sc.format)
		}
	}
}
