package services

import (
	"strings"

	"github.com/modstash/modstash/internal/core/domain"
)

// Classify determines which recognized source shape a drop represents.
// Pure and total: no I/O, no failure, the same entry list always yields
// the same variant. Precedence privileges the explicit single-file shapes
// before the folder-dump heuristic.
func Classify(entries []domain.DroppedEntry) domain.Source {
	if len(entries) == 0 {
		return domain.Unrecognized{}
	}

	if len(entries) == 1 {
		if domain.IsPackedAsset(entries[0].Name) {
			return domain.SinglePackedAsset{Entry: entries[0]}
		}
		if domain.IsArchive(entries[0].Name) {
			return domain.SingleArchive{Entry: entries[0]}
		}
	}

	var matches []domain.DroppedEntry
	for _, e := range entries {
		if domain.IsPackedAsset(e.Name) {
			matches = append(matches, e)
		}
	}
	if len(matches) > 0 {
		return domain.FolderPackedAssets{
			Entries:    matches,
			FolderName: folderName(matches[0]),
		}
	}

	return domain.Unrecognized{}
}

// folderName recovers the top folder display name from an entry's
// relative path. Empty when the entry has no path prefix beyond its own
// name.
func folderName(e domain.DroppedEntry) string {
	rel := strings.ReplaceAll(e.RelativePath, "\\", "/")
	first, _, found := strings.Cut(rel, "/")
	if !found || first == "" {
		return ""
	}
	return first
}
