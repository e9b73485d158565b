package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Vault represents the managed storage directory for modstash. Commands
// inject it into services so tests can point everything at a temp root.
type Vault struct {
	RootPath   string
	ModsPath   string
	DropsPath  string
	CachePath  string
	ConfigPath string
}

// New creates a new Vault instance with XDG-compliant paths
func New() (*Vault, error) {
	rootPath, rootErr := getVaultRoot()
	configPath, configErr := getConfigPath()
	if rootErr != nil {
		return nil, fmt.Errorf("failed to determine vault root: %w", rootErr)
	}
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}

	return FromRoot(rootPath, configPath), nil
}

// FromRoot builds a Vault rooted at an explicit directory. Used by tests
// and anywhere the storage root is injected rather than discovered.
func FromRoot(rootPath, configPath string) *Vault {
	return &Vault{
		RootPath:   rootPath,
		ModsPath:   filepath.Join(rootPath, "mods"),
		DropsPath:  filepath.Join(rootPath, "drops"),
		CachePath:  filepath.Join(rootPath, "cache"),
		ConfigPath: configPath,
	}
}

// getVaultRoot returns the vault root directory path
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func getVaultRoot() (string, error) {
	// Check XDG_DATA_HOME first (Unix-like systems)
	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "modstash"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "modstash"), nil
	}

	// Fall back to ~/.local/share/modstash (Unix-like systems)
	return filepath.Join(homeDir, ".local", "share", "modstash"), nil
}

func getConfigPath() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "modstash", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "modstash-config", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "modstash", "config.yaml"), nil
}

// Initialize creates the vault directory structure if it doesn't exist
func (v *Vault) Initialize() error {
	directories := []string{
		v.RootPath,
		v.ModsPath,
		v.DropsPath,
		v.CachePath,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Exists checks if the vault has been initialized
func (v *Vault) Exists() bool {
	info, err := os.Stat(v.RootPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// GetModPath returns the root directory for a mod id
func (v *Vault) GetModPath(id string) string {
	return filepath.Join(v.ModsPath, id)
}

// GetModFilesPath returns the payload directory for a mod id
func (v *Vault) GetModFilesPath(id string) string {
	return filepath.Join(v.ModsPath, id, "files")
}

// GetCachePath returns the full path for a cached file
func (v *Vault) GetCachePath(filename string) string {
	return filepath.Join(v.CachePath, filename)
}

// RegistryPath returns the path to the mod registry manifest
func (v *Vault) RegistryPath() string {
	return filepath.Join(v.ModsPath, ".registry.json")
}

// CleanCache removes all files in the cache directory
func (v *Vault) CleanCache() error {
	entries, err := os.ReadDir(v.CachePath)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(v.CachePath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
