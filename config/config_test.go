package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ImagesRoot != "./Images" || cfg.OutputRoot != "./Labels" || cfg.ClassesFile != "classes.txt" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_BadJSONReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	_ = os.WriteFile(path, []byte("{not json"), 0o644)
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.CanvasMinWidth != 400 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_NormalizesExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SupportedExtensions = []string{"JPG", "*.png", " .webp ", "", "."}
	_ = cfg.Validate()
	want := []string{".jpg", ".png", ".webp"}
	if len(cfg.SupportedExtensions) != len(want) {
		t.Fatalf("got %v want %v", cfg.SupportedExtensions, want)
	}
	for i := range want {
		if cfg.SupportedExtensions[i] != want[i] {
			t.Fatalf("got %v want %v", cfg.SupportedExtensions, want)
		}
	}
}

func TestValidate_ClampsCanvas(t *testing.T) {
	cfg := &Config{CanvasMinWidth: 900, CanvasMaxWidth: 100}
	_ = cfg.Validate()
	if cfg.CanvasMinHeight != 400 || cfg.CanvasMaxWidth < cfg.CanvasMinWidth {
		t.Fatalf("canvas not clamped: %+v", cfg)
	}
	if len(cfg.SupportedExtensions) != 2 || cfg.LogLevel != "info" {
		t.Fatalf("empty fields not defaulted: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.ImagesRoot = "/data/images"
	cfg.Debug = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ImagesRoot != "/data/images" || !got.Debug {
		t.Fatalf("round trip lost values: %+v", got)
	}
}
