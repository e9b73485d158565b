package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modstash/modstash/internal/adapters/repository"
	"github.com/modstash/modstash/internal/core/services"
	"github.com/modstash/modstash/pkg/config"
	"github.com/modstash/modstash/pkg/vault"
)

// setupWatchEnv points the command globals at a throwaway vault
func setupWatchEnv(t *testing.T) {
	t.Helper()

	root := t.TempDir()
	appVault = vault.FromRoot(root, filepath.Join(root, "config.yaml"))
	if err := appVault.Initialize(); err != nil {
		t.Fatalf("failed to initialize vault: %v", err)
	}
	appConfig = config.DefaultConfig()
	stageService = services.NewStageService(appVault)
	modRegistry = repository.NewFileModRegistry(appVault)

	watchQuiet = true
	t.Cleanup(func() { watchQuiet = false })
}

func TestIngestDrops_SameDropIngestedOnce(t *testing.T) {
	setupWatchEnv(t)
	ctx := getContext()

	drop := filepath.Join(appVault.DropsPath, "SkinPack.vpk")
	if err := os.WriteFile(drop, []byte("vpk payload"), 0644); err != nil {
		t.Fatalf("failed to write drop: %v", err)
	}

	// Two debounced passes over the same drop; default config leaves the
	// drop file in place between them.
	ingested := make(map[string]bool)
	if err := ingestDrops(ctx, ingested); err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}
	if err := ingestDrops(ctx, ingested); err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}

	records, err := modRegistry.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 registered mod after two passes, got %d", len(records))
	}

	if _, err := os.Stat(drop); err != nil {
		t.Errorf("drop should remain in place under default config: %v", err)
	}
}

func TestIngestDrops_ArchiveFallbackPayloadEmpty(t *testing.T) {
	setupWatchEnv(t)
	ctx := getContext()

	drop := filepath.Join(appVault.DropsPath, "bundle.rar")
	if err := os.WriteFile(drop, []byte("rar bytes"), 0644); err != nil {
		t.Fatalf("failed to write drop: %v", err)
	}

	if err := ingestDrops(ctx, make(map[string]bool)); err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	records, err := modRegistry.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 registered mod, got %d", len(records))
	}
	if records[0].Payload != "" {
		t.Errorf("payload = %q, want empty on the archive-fallback path", records[0].Payload)
	}
}

func TestIngestDrops_UnrecognizedSkipped(t *testing.T) {
	setupWatchEnv(t)
	ctx := getContext()

	drop := filepath.Join(appVault.DropsPath, "readme.txt")
	if err := os.WriteFile(drop, []byte("notes"), 0644); err != nil {
		t.Fatalf("failed to write drop: %v", err)
	}

	ingested := make(map[string]bool)
	if err := ingestDrops(ctx, ingested); err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	records, err := modRegistry.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no registered mods, got %d", len(records))
	}
	if !ingested["readme.txt"] {
		t.Error("unrecognized drop should not be rescanned")
	}
}

func TestIngestDrops_RemoveDropEnabled(t *testing.T) {
	setupWatchEnv(t)
	ctx := getContext()
	appConfig.WatchRemoveDrop = true

	drop := filepath.Join(appVault.DropsPath, "SkinPack.vpk")
	if err := os.WriteFile(drop, []byte("vpk payload"), 0644); err != nil {
		t.Fatalf("failed to write drop: %v", err)
	}

	if err := ingestDrops(ctx, make(map[string]bool)); err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if _, err := os.Stat(drop); !os.IsNotExist(err) {
		t.Errorf("drop should be removed when watch_remove_drop is set, got %v", err)
	}
}
