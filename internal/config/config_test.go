package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Morph.Duration <= 0 {
		t.Errorf("expected positive morph duration, got %f", cfg.Morph.Duration)
	}
	if cfg.Morph.SpinSpeed <= 0 {
		t.Errorf("expected positive spin speed, got %f", cfg.Morph.SpinSpeed)
	}
	if cfg.Morph.StartFlat {
		t.Error("expected viewer to start in globe mode")
	}

	if cfg.Marker.PanSpeed <= 0 {
		t.Errorf("expected positive pan speed, got %f", cfg.Marker.PanSpeed)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Morph.Duration = 2.5
	cfg.Morph.StartFlat = true

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("width = %d, want 1920", loaded.Graphics.Width)
	}
	if loaded.Morph.Duration != 2.5 {
		t.Errorf("morph duration = %f, want 2.5", loaded.Morph.Duration)
	}
	if !loaded.Morph.StartFlat {
		t.Error("start_flat should survive the round trip")
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// A partial file only overrides what it names.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "graphics:\n  width: 800\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.Graphics.Height)
	}
	if cfg.Morph.SpinSpeed != Default().Morph.SpinSpeed {
		t.Error("unrelated sections should keep defaults")
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("graphics: ["), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
