package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVault_GetModPath(t *testing.T) {
	v := &Vault{
		ModsPath: "/test/vault/mods",
	}

	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"local id", "local-abc123", "/test/vault/mods/local-abc123"},
		{"uuid style", "local-9f8b", "/test/vault/mods/local-9f8b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.GetModPath(tt.id)
			if result != tt.expected {
				t.Errorf("GetModPath(%q) = %q, want %q", tt.id, result, tt.expected)
			}
		})
	}
}

func TestVault_GetModFilesPath(t *testing.T) {
	v := &Vault{
		ModsPath: "/test/vault/mods",
	}

	result := v.GetModFilesPath("local-abc123")
	expected := "/test/vault/mods/local-abc123/files"
	if result != expected {
		t.Errorf("GetModFilesPath() = %q, want %q", result, expected)
	}
}

func TestVault_RegistryPath(t *testing.T) {
	v := &Vault{
		ModsPath: "/test/vault/mods",
	}

	if got := v.RegistryPath(); got != "/test/vault/mods/.registry.json" {
		t.Errorf("RegistryPath() = %q", got)
	}
}

func TestVault_FromRoot(t *testing.T) {
	v := FromRoot("/data/modstash", "/cfg/config.yaml")

	if v.ModsPath != filepath.Join("/data/modstash", "mods") {
		t.Errorf("unexpected ModsPath: %q", v.ModsPath)
	}
	if v.DropsPath != filepath.Join("/data/modstash", "drops") {
		t.Errorf("unexpected DropsPath: %q", v.DropsPath)
	}
	if v.ConfigPath != "/cfg/config.yaml" {
		t.Errorf("unexpected ConfigPath: %q", v.ConfigPath)
	}
}

func TestVault_InitializeAndExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "vault")
	v := FromRoot(root, filepath.Join(root, "config.yaml"))

	if v.Exists() {
		t.Fatal("vault should not exist before Initialize")
	}

	if err := v.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if !v.Exists() {
		t.Error("vault should exist after Initialize")
	}

	for _, dir := range []string{v.ModsPath, v.DropsPath, v.CachePath} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory at %s", dir)
		}
	}

	// Re-running Initialize on an existing vault is not an error
	if err := v.Initialize(); err != nil {
		t.Errorf("second Initialize failed: %v", err)
	}
}

func TestVault_CleanCache(t *testing.T) {
	root := t.TempDir()
	v := FromRoot(root, filepath.Join(root, "config.yaml"))
	if err := v.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	stale := v.GetCachePath("stats.html")
	if err := os.WriteFile(stale, []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	if err := v.CleanCache(); err != nil {
		t.Fatalf("CleanCache failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected cache file to be removed")
	}
}
