package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/modstash/modstash/internal/core/domain"
)

func sampleMeta() domain.Metadata {
	link := "https://example.com/mod"
	return domain.Metadata{
		ID:        "local-test",
		Kind:      domain.KindLocal,
		Name:      "Red Armor",
		Author:    "Unknown",
		Link:      &link,
		Category:  domain.CategorySkins,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Preview:   "preview.svg",
		Schema:    domain.MetadataSchemaVersion,
	}
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	meta := sampleMeta()

	if err := Write(dir, meta); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(dir)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if got.ID != meta.ID || got.Name != meta.Name || got.Category != meta.Category {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if got.Link == nil || *got.Link != *meta.Link {
		t.Error("link did not survive round trip")
	}
	if got.Description != nil {
		t.Error("expected nil description")
	}
	if !got.CreatedAt.Equal(meta.CreatedAt) {
		t.Errorf("createdAt mismatch: %v != %v", got.CreatedAt, meta.CreatedAt)
	}
}

func TestWrite_DocumentShape(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, sampleMeta()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("failed to read document: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}

	for _, field := range []string{"id", "kind", "name", "author", "link", "description", "category", "createdAt", "preview", "_schema"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("document missing field %q", field)
		}
	}

	if doc["kind"] != "local" {
		t.Errorf("expected kind 'local', got %v", doc["kind"])
	}
	if doc["description"] != nil {
		t.Errorf("expected null description, got %v", doc["description"])
	}
	if doc["_schema"] != float64(1) {
		t.Errorf("expected _schema 1, got %v", doc["_schema"])
	}

	// createdAt must serialize as an ISO-8601 timestamp
	if ts, ok := doc["createdAt"].(string); !ok || !strings.Contains(ts, "T") {
		t.Errorf("expected ISO-8601 createdAt, got %v", doc["createdAt"])
	}
}

func TestRead_RejectsNewerSchema(t *testing.T) {
	dir := t.TempDir()
	meta := sampleMeta()
	meta.Schema = domain.MetadataSchemaVersion + 1

	data, _ := json.Marshal(meta)
	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}

	if _, err := Read(dir); err == nil {
		t.Error("expected error for newer schema version")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(t.TempDir()); err == nil {
		t.Error("expected error for missing metadata document")
	}
}
