package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 64, 255})
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(w, h), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessJPEG(t *testing.T) {
	result, err := Process(bytes.NewReader(encodeJPEG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Process JPEG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", result.MIME)
	}
	if len(result.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestProcessPNG(t *testing.T) {
	result, err := Process(bytes.NewReader(encodePNG(t, 100, 100)))
	if err != nil {
		t.Fatalf("Process PNG: %v", err)
	}
	if result.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (output is always JPEG), got %s", result.MIME)
	}
}

func TestProcessDownscales(t *testing.T) {
	result, err := Process(bytes.NewReader(encodeJPEG(t, MaxDimension*2, MaxDimension)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result config: %v", err)
	}
	if cfg.Width != MaxDimension || cfg.Height != MaxDimension/2 {
		t.Errorf("expected %dx%d, got %dx%d", MaxDimension, MaxDimension/2, cfg.Width, cfg.Height)
	}
}

func TestProcessKeepsSmallImages(t *testing.T) {
	result, err := Process(bytes.NewReader(encodePNG(t, 320, 240)))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result config: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("expected 320x240 unchanged, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	if _, err := Process(strings.NewReader("plain text, not an image")); err == nil {
		t.Error("expected error for non-image input")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{100, 100, 100, 100},
		{MaxDimension, MaxDimension, MaxDimension, MaxDimension},
		{2560, 1280, 1280, 640},
		{1280, 2560, 640, 1280},
		{5000, 1, 1280, 1},
	}

	for _, tt := range tests {
		got := fit(testImage(tt.w, tt.h), MaxDimension)
		bounds := got.Bounds()
		if bounds.Dx() != tt.wantW || bounds.Dy() != tt.wantH {
			t.Errorf("fit(%dx%d): expected %dx%d, got %dx%d",
				tt.w, tt.h, tt.wantW, tt.wantH, bounds.Dx(), bounds.Dy())
		}
	}
}
