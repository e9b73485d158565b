package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modstash/modstash/internal/core/domain"
)

func TestEntriesFromPaths_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "SkinPack.vpk")
	if err := os.WriteFile(file, []byte("payload"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	entries, err := entriesFromPaths([]string{file})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "SkinPack.vpk" {
		t.Errorf("expected name SkinPack.vpk, got %q", entries[0].Name)
	}
	if entries[0].RelativePath != "" {
		t.Errorf("plain files must not carry a relative path, got %q", entries[0].RelativePath)
	}

	data, err := entries[0].Bytes()
	if err != nil {
		t.Fatalf("failed to read entry: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestEntriesFromPaths_FolderFlattening(t *testing.T) {
	parent := t.TempDir()
	modDir := filepath.Join(parent, "my-mod")
	nested := filepath.Join(modDir, "sub")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create folders: %v", err)
	}
	for _, f := range []string{
		filepath.Join(modDir, "a.vpk"),
		filepath.Join(modDir, "readme.txt"),
		filepath.Join(nested, "b.vpk"),
	} {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}

	entries, err := entriesFromPaths([]string{modDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 flattened entries, got %d", len(entries))
	}

	byName := make(map[string]domain.DroppedEntry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	if e, ok := byName["a.vpk"]; !ok || e.RelativePath != "my-mod/a.vpk" {
		t.Errorf("unexpected relative path for a.vpk: %+v", e)
	}
	if e, ok := byName["b.vpk"]; !ok || e.RelativePath != "my-mod/sub/b.vpk" {
		t.Errorf("unexpected relative path for b.vpk: %+v", e)
	}
}

func TestEntriesFromPaths_MissingPath(t *testing.T) {
	if _, err := entriesFromPaths([]string{filepath.Join(t.TempDir(), "nope.vpk")}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		name   string
		source domain.Source
		want   string
	}{
		{
			"single asset",
			domain.SinglePackedAsset{Entry: domain.DroppedEntry{Name: "Red-Armor.vpk"}},
			"Red Armor",
		},
		{
			"archive",
			domain.SingleArchive{Entry: domain.DroppedEntry{Name: "bundle.zip"}},
			"bundle",
		},
		{
			"folder with name",
			domain.FolderPackedAssets{
				Entries:    []domain.DroppedEntry{{Name: "a.vpk"}},
				FolderName: "cool_mod",
			},
			"cool mod",
		},
		{
			"folder without name",
			domain.FolderPackedAssets{
				Entries: []domain.DroppedEntry{{Name: "solo.vpk"}},
			},
			"solo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultName(tt.source, "fallback"); got != tt.want {
				t.Errorf("defaultName() = %q, want %q", got, tt.want)
			}
		})
	}
}
