package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestNormalizeResizesToTarget(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 50; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	got, err := Normalize(buf.Bytes())
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	bounds := got.Bounds()
	if bounds.Dx() != TargetSize || bounds.Dy() != TargetSize {
		t.Errorf("bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), TargetSize, TargetSize)
	}
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	if _, err := Normalize([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}
