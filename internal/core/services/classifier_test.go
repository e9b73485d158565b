package services

import (
	"testing"

	"github.com/modstash/modstash/internal/core/domain"
)

func entry(name string) domain.DroppedEntry {
	return domain.DroppedEntry{Name: name}
}

func relEntry(name, rel string) domain.DroppedEntry {
	return domain.DroppedEntry{Name: name, RelativePath: rel}
}

func TestClassify_SinglePackedAsset(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"lowercase", "skinpack.vpk"},
		{"uppercase", "SKINPACK.VPK"},
		{"mixed case", "SkinPack.Vpk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := Classify([]domain.DroppedEntry{entry(tt.file)})
			single, ok := src.(domain.SinglePackedAsset)
			if !ok {
				t.Fatalf("expected SinglePackedAsset, got %T", src)
			}
			if single.Entry.Name != tt.file {
				t.Errorf("expected entry %q, got %q", tt.file, single.Entry.Name)
			}
		})
	}
}

func TestClassify_SingleArchive(t *testing.T) {
	for _, file := range []string{"bundle.zip", "bundle.RAR", "bundle.7z", "Bundle.Zip"} {
		t.Run(file, func(t *testing.T) {
			src := Classify([]domain.DroppedEntry{entry(file)})
			archive, ok := src.(domain.SingleArchive)
			if !ok {
				t.Fatalf("expected SingleArchive, got %T", src)
			}
			if archive.Entry.Name != file {
				t.Errorf("expected entry %q, got %q", file, archive.Entry.Name)
			}
		})
	}
}

func TestClassify_FolderPackedAssets(t *testing.T) {
	src := Classify([]domain.DroppedEntry{
		relEntry("readme.txt", "a/readme.txt"),
		relEntry("b.vpk", "a/b.vpk"),
		relEntry("c.vpk", "a/c.vpk"),
	})

	folder, ok := src.(domain.FolderPackedAssets)
	if !ok {
		t.Fatalf("expected FolderPackedAssets, got %T", src)
	}
	if len(folder.Entries) != 2 {
		t.Fatalf("expected exactly the 2 matching entries, got %d", len(folder.Entries))
	}
	if folder.Entries[0].Name != "b.vpk" || folder.Entries[1].Name != "c.vpk" {
		t.Errorf("expected matching subset in drop order, got %v", folder.Entries)
	}
	if folder.FolderName != "a" {
		t.Errorf("expected folder name 'a', got %q", folder.FolderName)
	}
}

func TestClassify_FolderWithoutRelativePaths(t *testing.T) {
	src := Classify([]domain.DroppedEntry{
		entry("notes.txt"),
		entry("pack.vpk"),
	})

	folder, ok := src.(domain.FolderPackedAssets)
	if !ok {
		t.Fatalf("expected FolderPackedAssets, got %T", src)
	}
	if folder.FolderName != "" {
		t.Errorf("expected empty folder name, got %q", folder.FolderName)
	}
}

func TestClassify_NonMatchingFilesNeverCauseRejection(t *testing.T) {
	entries := []domain.DroppedEntry{
		entry("a.txt"), entry("b.png"), entry("c.cfg"),
		entry("payload.vpk"),
		entry("d.md"),
	}

	src := Classify(entries)
	folder, ok := src.(domain.FolderPackedAssets)
	if !ok {
		t.Fatalf("expected FolderPackedAssets, got %T", src)
	}
	if len(folder.Entries) != 1 || folder.Entries[0].Name != "payload.vpk" {
		t.Errorf("expected only the matching entry, got %v", folder.Entries)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.DroppedEntry
	}{
		{"empty drop", nil},
		{"single non-matching file", []domain.DroppedEntry{entry("readme.txt")}},
		{"multi drop with no matches", []domain.DroppedEntry{entry("a.txt"), entry("b.png")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Classify(tt.entries).(domain.Unrecognized); !ok {
				t.Errorf("expected Unrecognized, got %T", Classify(tt.entries))
			}
		})
	}
}

func TestClassify_SingleEntryArchiveBeatsFolderRule(t *testing.T) {
	// a lone .zip must classify as SingleArchive, never fall through
	src := Classify([]domain.DroppedEntry{relEntry("bundle.zip", "pack/bundle.zip")})
	if _, ok := src.(domain.SingleArchive); !ok {
		t.Errorf("expected SingleArchive, got %T", src)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	entries := []domain.DroppedEntry{
		relEntry("z.vpk", "mod/z.vpk"),
		relEntry("a.vpk", "mod/a.vpk"),
	}

	first := Classify(entries).(domain.FolderPackedAssets)
	second := Classify(entries).(domain.FolderPackedAssets)

	if len(first.Entries) != len(second.Entries) || first.FolderName != second.FolderName {
		t.Error("classification must be deterministic for the same entry list")
	}
	// drop order is preserved, not sorted; ordering is the stager's concern
	if first.Entries[0].Name != "z.vpk" {
		t.Errorf("expected drop order preserved, got %v", first.Entries)
	}
}
