package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, warnings, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("defaults should not warn, got %v", warnings)
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		t.Errorf("window dimensions should be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Ocean.RiseOffset != 42 {
		t.Errorf("expected default rise offset 42, got %v", cfg.Ocean.RiseOffset)
	}
	if cfg.Ocean.Sensitivity != 12 {
		t.Errorf("expected default sensitivity 12, got %v", cfg.Ocean.Sensitivity)
	}
	if cfg.Ocean.SpeedSmoothing != 0.08 {
		t.Errorf("expected default speed smoothing 0.08, got %v", cfg.Ocean.SpeedSmoothing)
	}
	if len(cfg.Layers) == 0 {
		t.Fatal("defaults should declare at least one layer")
	}
}

func TestLoadOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ocean:\n  rise_offset: 30.0\nwindow:\n  width: 640\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ocean.RiseOffset != 30 {
		t.Errorf("overlay should override rise offset, got %v", cfg.Ocean.RiseOffset)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("overlay should override width, got %d", cfg.Window.Width)
	}
	// Untouched keys keep their defaults.
	if cfg.Ocean.Sensitivity != 12 {
		t.Errorf("sensitivity should keep default 12, got %v", cfg.Ocean.Sensitivity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file should be an error")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("layers: {not a list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestSanitizeNegativeLayerSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("layers:\n  - name: broken\n    speed: -0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Layers) != 1 {
		t.Fatalf("expected the overlay to replace the layer list, got %d layers", len(cfg.Layers))
	}
	if cfg.Layers[0].Speed != 0 {
		t.Errorf("negative speed should clamp to 0, got %v", cfg.Layers[0].Speed)
	}
	if len(warnings) == 0 {
		t.Error("clamping a layer speed should produce a warning")
	}
}

func TestSanitizeMissingLayerSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("layers:\n  - name: still\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, warnings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Layers[0].Speed != 0 {
		t.Errorf("missing speed should parse as 0, got %v", cfg.Layers[0].Speed)
	}
	if len(warnings) != 0 {
		t.Errorf("a missing speed is valid (fixed layer), got warnings %v", warnings)
	}
}
