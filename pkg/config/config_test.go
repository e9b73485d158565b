package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultCategory != "other" {
		t.Errorf("expected default category 'other', got %q", cfg.DefaultCategory)
	}
	if cfg.DefaultSort != "date" {
		t.Errorf("expected default sort 'date', got %q", cfg.DefaultSort)
	}
	if !cfg.CopyPathOnAdd {
		t.Error("expected copy_path_on_add to default to true")
	}
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `default_category: skins
default_sort: name
file_manager: nautilus
watch_debounce_ms: 250
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultCategory != "skins" {
		t.Errorf("expected 'skins', got %q", cfg.DefaultCategory)
	}
	if cfg.DefaultSort != "name" {
		t.Errorf("expected 'name', got %q", cfg.DefaultSort)
	}
	if cfg.FileManager != "nautilus" {
		t.Errorf("expected 'nautilus', got %q", cfg.FileManager)
	}
	if cfg.WatchDebounceMS != 250 {
		t.Errorf("expected debounce 250, got %d", cfg.WatchDebounceMS)
	}
}

func TestLoad_InvalidSortFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_sort: size\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultSort != "date" {
		t.Errorf("expected fallback to 'date', got %q", cfg.DefaultSort)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultCategory = "maps"
	cfg.ReverseSort = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultCategory != "maps" {
		t.Errorf("expected 'maps', got %q", loaded.DefaultCategory)
	}
	if !loaded.ReverseSort {
		t.Error("expected reverse_sort to survive round trip")
	}
}
