package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/pkg/vault"
)

// FileModRegistry persists the mod registry as a JSON manifest inside the
// vault's mods directory.
type FileModRegistry struct {
	vault        *vault.Vault
	manifestPath string
	mu           sync.RWMutex
	cache        map[string]domain.ModRecord
}

func NewFileModRegistry(v *vault.Vault) *FileModRegistry {
	return &FileModRegistry{
		vault:        v,
		manifestPath: v.RegistryPath(),
		cache:        make(map[string]domain.ModRecord),
	}
}

// Load reads the manifest from disk
func (r *FileModRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// loadLocked reads the manifest into the cache. Caller holds the write lock.
func (r *FileModRegistry) loadLocked() error {
	data, err := os.ReadFile(r.manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(data, &r.cache)
}

// ensureLoaded lazily populates the cache under the lock
func (r *FileModRegistry) ensureLoaded() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.cache) == 0 {
		r.loadLocked()
	}
}

// Save adds or updates a mod record and persists the manifest
func (r *FileModRegistry) Save(ctx context.Context, rec domain.ModRecord) error {
	r.ensureLoaded()

	r.mu.Lock()
	r.cache[rec.Meta.ID] = rec
	r.mu.Unlock()

	return r.flush()
}

// flush writes cache to disk
func (r *FileModRegistry) flush() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(r.manifestPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r.cache, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.manifestPath, data, 0644)
}

// Get retrieves a mod record by id
func (r *FileModRegistry) Get(ctx context.Context, id string) (*domain.ModRecord, error) {
	r.ensureLoaded()

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.cache[id]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &rec, nil
}

// List returns all registered mods
func (r *FileModRegistry) List(ctx context.Context) ([]domain.ModRecord, error) {
	r.ensureLoaded()

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]domain.ModRecord, 0, len(r.cache))
	for _, rec := range r.cache {
		records = append(records, rec)
	}
	return records, nil
}

// Search finds mods whose name, author, category or id contains the query
func (r *FileModRegistry) Search(ctx context.Context, query string) ([]domain.ModRecord, error) {
	r.ensureLoaded()

	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	var matches []domain.ModRecord

	for _, rec := range r.cache {
		if strings.Contains(strings.ToLower(rec.Meta.Name), query) ||
			strings.Contains(strings.ToLower(rec.Meta.Author), query) ||
			strings.Contains(strings.ToLower(string(rec.Meta.Category)), query) ||
			strings.Contains(strings.ToLower(rec.Meta.ID), query) {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}

// Delete removes a mod from the registry and persists the manifest
func (r *FileModRegistry) Delete(ctx context.Context, id string) error {
	r.ensureLoaded()

	r.mu.Lock()
	if _, ok := r.cache[id]; !ok {
		r.mu.Unlock()
		return os.ErrNotExist
	}
	delete(r.cache, id)
	r.mu.Unlock()

	return r.flush()
}
