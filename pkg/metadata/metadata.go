// Package metadata reads and writes the canonical metadata.json document
// stored in every mod directory.
package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modstash/modstash/internal/core/domain"
)

// FileName is the metadata document name inside a mod directory.
const FileName = "metadata.json"

// Path returns the metadata document path for a mod directory.
func Path(modDir string) string {
	return filepath.Join(modDir, FileName)
}

// Write persists the metadata document into the mod directory.
func Write(modDir string, meta domain.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.WriteFile(Path(modDir), data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}

// Read loads the metadata document from a mod directory. Documents from a
// newer schema than this build understands are rejected.
func Read(modDir string) (*domain.Metadata, error) {
	data, err := os.ReadFile(Path(modDir))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	if meta.Schema > domain.MetadataSchemaVersion {
		return nil, fmt.Errorf("metadata schema %d is newer than supported %d",
			meta.Schema, domain.MetadataSchemaVersion)
	}

	return &meta, nil
}
