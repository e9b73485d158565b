package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/ports"
)

// ListService handles listing and filtering registered mods
type ListService struct {
	registry ports.ModRegistry
}

// NewListService creates a new list service
func NewListService(registry ports.ModRegistry) *ListService {
	return &ListService{
		registry: registry,
	}
}

// ListRequest represents a request to list mods
type ListRequest struct {
	Category string // Filter by category (optional)
	SortBy   string // "date", "name", "category" (default: date)
	Reverse  bool   // Reverse sort order
}

// ListResponse represents the response from listing mods
type ListResponse struct {
	Mods  []domain.ModRecord
	Total int
}

// SearchRequest represents a free-text search over the registry
type SearchRequest struct {
	Query string
	Limit int
}

// SearchResponse represents the response from a search
type SearchResponse struct {
	Mods  []domain.ModRecord
	Total int
}

// Execute lists mods with optional filtering and sorting
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	records, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mods: %w", err)
	}

	if req.Category != "" {
		records = filterByCategory(records, req.Category)
	}

	sortRecords(records, req.SortBy, req.Reverse)

	return &ListResponse{
		Mods:  records,
		Total: len(records),
	}, nil
}

// Search finds mods matching a query, newest first
func (s *ListService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	records, err := s.registry.Search(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search mods: %w", err)
	}

	sortRecords(records, "date", false)

	if req.Limit > 0 && len(records) > req.Limit {
		records = records[:req.Limit]
	}

	return &SearchResponse{
		Mods:  records,
		Total: len(records),
	}, nil
}

func filterByCategory(records []domain.ModRecord, category string) []domain.ModRecord {
	var filtered []domain.ModRecord
	for _, rec := range records {
		if strings.EqualFold(string(rec.Meta.Category), category) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// sortRecords orders records in place. "date" means newest first unless
// reversed; the other fields sort ascending.
func sortRecords(records []domain.ModRecord, sortBy string, reverse bool) {
	switch sortBy {
	case "name":
		sort.Slice(records, func(i, j int) bool {
			return strings.ToLower(records[i].Meta.Name) < strings.ToLower(records[j].Meta.Name)
		})
	case "category":
		sort.Slice(records, func(i, j int) bool {
			if records[i].Meta.Category != records[j].Meta.Category {
				return records[i].Meta.Category < records[j].Meta.Category
			}
			return strings.ToLower(records[i].Meta.Name) < strings.ToLower(records[j].Meta.Name)
		})
	default: // "date"
		sort.Slice(records, func(i, j int) bool {
			return records[i].Meta.CreatedAt.After(records[j].Meta.CreatedAt)
		})
	}

	if reverse {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
}
