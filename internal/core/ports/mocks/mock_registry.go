package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/modstash/modstash/internal/core/domain"
)

// MockRegistry is a mock implementation of the ModRegistry interface for testing
type MockRegistry struct {
	mu   sync.RWMutex
	mods map[string]domain.ModRecord
}

// NewMockRegistry creates a new mock registry
func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		mods: make(map[string]domain.ModRecord),
	}
}

// Save adds or updates a mod record
func (m *MockRegistry) Save(ctx context.Context, rec domain.ModRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mods[rec.Meta.ID] = rec
	return nil
}

// Get retrieves a mod record by id
func (m *MockRegistry) Get(ctx context.Context, id string) (*domain.ModRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.mods[id]
	if !ok {
		return nil, fmt.Errorf("mod not found: %s", id)
	}
	return &rec, nil
}

// List returns all registered mods
func (m *MockRegistry) List(ctx context.Context) ([]domain.ModRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]domain.ModRecord, 0, len(m.mods))
	for _, rec := range m.mods {
		records = append(records, rec)
	}
	return records, nil
}

// Search finds mods whose name, author, category or id contains the query
func (m *MockRegistry) Search(ctx context.Context, query string) ([]domain.ModRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(query)
	var matches []domain.ModRecord
	for _, rec := range m.mods {
		if strings.Contains(strings.ToLower(rec.Meta.Name), query) ||
			strings.Contains(strings.ToLower(rec.Meta.Author), query) ||
			strings.Contains(strings.ToLower(string(rec.Meta.Category)), query) ||
			strings.Contains(strings.ToLower(rec.Meta.ID), query) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// Delete removes a mod from the registry
func (m *MockRegistry) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.mods[id]; !ok {
		return fmt.Errorf("mod not found: %s", id)
	}
	delete(m.mods, id)
	return nil
}

// Len reports the number of stored records
func (m *MockRegistry) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.mods)
}
