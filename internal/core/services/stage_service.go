package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/pkg/metadata"
	"github.com/modstash/modstash/pkg/preview"
	"github.com/modstash/modstash/pkg/vault"
)

// ErrNoSource is returned when staging is attempted on an unrecognized
// drop. Nothing is written in that case.
var ErrNoSource = errors.New("drop did not contain a usable mod source")

// WarnArchiveStored is the recoverable condition reported when an archive
// held no payload (or could not be opened) and was stored whole instead.
const WarnArchiveStored = "no payload found inside archive; archive stored as-is for manual handling"

// StageService materializes a classified source plus finished metadata
// into the canonical on-disk mod layout under the vault's mods directory.
type StageService struct {
	vault *vault.Vault
}

func NewStageService(v *vault.Vault) *StageService {
	return &StageService{vault: v}
}

// StageRequest carries one ingestion call
type StageRequest struct {
	Source   domain.Source
	Meta     domain.DraftMetadata
	Category domain.Category
}

// StageResponse is the staged mod plus any recoverable warnings
type StageResponse struct {
	Mod      domain.StagedMod
	Warnings []string
}

// Execute stages a classified source. I/O failures while creating
// directories or writing the payload are fatal; preview failures and the
// archive-fallback path degrade to warnings. Partial state on a fatal
// error is left in place for the caller to inspect or discard.
func (s *StageService) Execute(ctx context.Context, req StageRequest) (*StageResponse, error) {
	if req.Source == nil {
		return nil, ErrNoSource
	}
	if _, ok := req.Source.(domain.Unrecognized); ok {
		return nil, ErrNoSource
	}

	// 1. Layout
	id := domain.NewLocalModID()
	rootDir := s.vault.GetModPath(id)
	filesDir := s.vault.GetModFilesPath(id)

	if err := os.MkdirAll(filesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create mod directory: %w", err)
	}

	var warnings []string

	// 2. Preview (best effort, never fails the operation)
	previewName, err := preview.Write(rootDir, req.Meta.Image, req.Meta.ImageName)
	if err != nil {
		warnings = append(warnings, "preview not written: "+err.Error())
		previewName = ""
	}

	// 3. Payload
	var payloadPath string
	fromArchive := false

	switch src := req.Source.(type) {
	case domain.SinglePackedAsset:
		payloadPath, err = stageEntry(src.Entry, filesDir)

	case domain.FolderPackedAssets:
		entries := make([]domain.DroppedEntry, len(src.Entries))
		copy(entries, src.Entries)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		payloadPath, err = stageEntry(entries[0], filesDir)

	case domain.SingleArchive:
		fromArchive = true
		var warn string
		payloadPath, warn, err = stageArchive(src.Entry, rootDir, filesDir)
		if warn != "" {
			warnings = append(warnings, warn)
		}
	}
	if err != nil {
		return nil, err
	}

	// 4. Post-condition: an archive source must leave either a payload
	// under files/ or the original archive at the mod root
	if fromArchive && !hasPackedAsset(filesDir) {
		if src, ok := req.Source.(domain.SingleArchive); ok {
			if err := ensureArchiveCopy(src.Entry, rootDir); err != nil {
				return nil, err
			}
		}
	}

	// 5. Metadata document
	meta := buildMetadata(id, req, previewName)
	if err := metadata.Write(rootDir, meta); err != nil {
		return nil, err
	}

	mod := domain.StagedMod{
		ID:          id,
		RootDir:     rootDir,
		PayloadPath: payloadPath,
		Meta:        meta,
	}
	if previewName != "" {
		mod.PreviewPath = filepath.Join(rootDir, previewName)
	}

	return &StageResponse{Mod: mod, Warnings: warnings}, nil
}

// stageEntry copies one dropped entry verbatim into filesDir
func stageEntry(e domain.DroppedEntry, filesDir string) (string, error) {
	data, err := e.Bytes()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", e.Name, err)
	}

	dest := filepath.Join(filesDir, e.Name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write payload: %w", err)
	}
	return dest, nil
}

// stageArchive unwraps a zip archive into filesDir, or stores the whole
// archive at the mod root when it holds no payload or cannot be decoded.
// The returned warning is non-empty exactly on the fallback path.
func stageArchive(e domain.DroppedEntry, rootDir, filesDir string) (string, string, error) {
	data, err := e.Bytes()
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", e.Name, err)
	}

	if domain.IsZip(e.Name) {
		if dest, ok, err := extractPayload(data, filesDir); err != nil {
			return "", "", err
		} else if ok {
			return dest, "", nil
		}
	}

	// Fallback: store the archive unmodified at the mod root, outside
	// files/, for manual handling
	dest := filepath.Join(rootDir, e.Name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to store archive: %w", err)
	}
	return "", WarnArchiveStored, nil
}

// extractPayload finds the first packed-asset member of a zip and writes
// its bytes under filesDir, dropping any nested path prefix. Returns
// ok=false when the zip is unreadable or holds no matching member.
func extractPayload(data []byte, filesDir string) (string, bool, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", false, nil
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		base := path.Base(f.Name)
		if !domain.IsPackedAsset(base) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", false, fmt.Errorf("failed to open archive member %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", false, fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}

		dest := filepath.Join(filesDir, base)
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return "", false, fmt.Errorf("failed to write payload: %w", err)
		}
		return dest, true, nil
	}

	return "", false, nil
}

// hasPackedAsset reports whether dir holds at least one payload file
func hasPackedAsset(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && domain.IsPackedAsset(e.Name()) {
			return true
		}
	}
	return false
}

// ensureArchiveCopy guarantees the original archive sits at the mod root.
// Idempotent when the fallback path already stored it.
func ensureArchiveCopy(e domain.DroppedEntry, rootDir string) error {
	dest := filepath.Join(rootDir, e.Name)
	if _, err := os.Stat(dest); err == nil {
		return nil
	}

	data, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", e.Name, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to store archive: %w", err)
	}
	return nil
}

func buildMetadata(id string, req StageRequest, previewName string) domain.Metadata {
	author := strings.TrimSpace(req.Meta.Author)
	if author == "" {
		author = "Unknown"
	}

	meta := domain.Metadata{
		ID:        id,
		Kind:      domain.KindLocal,
		Name:      strings.TrimSpace(req.Meta.Name),
		Author:    author,
		Category:  req.Category,
		CreatedAt: time.Now().UTC(),
		Preview:   previewName,
		Schema:    domain.MetadataSchemaVersion,
	}
	if link := strings.TrimSpace(req.Meta.Link); link != "" {
		meta.Link = &link
	}
	if desc := strings.TrimSpace(req.Meta.Description); desc != "" {
		meta.Description = &desc
	}
	return meta
}
