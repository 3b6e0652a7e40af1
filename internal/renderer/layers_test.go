package renderer

import (
	"bytes"
	"testing"

	"Seascape/internal/config"
)

func testLayerConfig() config.LayerConfig {
	return config.LayerConfig{
		Name:    "mist",
		Speed:   0.05,
		Tint:    [3]float32{0.85, 0.92, 0.97},
		Alpha:   0.35,
		Octaves: 3,
		Scale:   2.5,
		Seed:    11,
	}
}

func TestBuildLayerImageDimensions(t *testing.T) {
	img := BuildLayerImage(testLayerConfig(), 64)

	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("expected a 64x64 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestBuildLayerImageDeterministic(t *testing.T) {
	a := BuildLayerImage(testLayerConfig(), 32)
	b := BuildLayerImage(testLayerConfig(), 32)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed should synthesize identical textures")
	}

	cfg := testLayerConfig()
	cfg.Seed = 99
	c := BuildLayerImage(cfg, 32)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("a different seed should synthesize a different texture")
	}
}

func TestBuildLayerImageTopRowTransparent(t *testing.T) {
	img := BuildLayerImage(testLayerConfig(), 32)

	for x := 0; x < 32; x++ {
		if a := img.RGBAAt(x, 0).A; a != 0 {
			t.Fatalf("row 0 should be fully transparent, pixel %d has alpha %d", x, a)
		}
	}
}

func TestBuildLayerImageAlphaBounded(t *testing.T) {
	cfg := testLayerConfig()
	cfg.Alpha = 0.35
	img := BuildLayerImage(cfg, 32)

	ceiling := float64(cfg.Alpha)
	limit := uint8(ceiling*255) + 1
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if a := img.RGBAAt(x, y).A; a > limit {
				t.Fatalf("pixel (%d,%d) alpha %d exceeds the configured ceiling", x, y, a)
			}
		}
	}
}

func TestChannelClamps(t *testing.T) {
	if got := channel(-0.5); got != 0 {
		t.Errorf("negative values should clamp to 0, got %d", got)
	}
	if got := channel(2.0); got != 255 {
		t.Errorf("values above 1 should clamp to 255, got %d", got)
	}
	if got := channel(0.5); got != 127 {
		t.Errorf("0.5 should map to 127, got %d", got)
	}
}
