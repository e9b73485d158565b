package services

import (
	"context"
	"testing"
	"time"

	"github.com/modstash/modstash/internal/core/domain"
	"github.com/modstash/modstash/internal/core/ports/mocks"
)

func seedRegistry(t *testing.T) *mocks.MockRegistry {
	t.Helper()
	reg := mocks.NewMockRegistry()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []domain.ModRecord{
		{Meta: domain.Metadata{ID: "local-1", Name: "Zebra Skin", Category: domain.CategorySkins, CreatedAt: base.Add(1 * time.Hour)}},
		{Meta: domain.Metadata{ID: "local-2", Name: "Alpine Map", Category: domain.CategoryMaps, CreatedAt: base.Add(3 * time.Hour)}},
		{Meta: domain.Metadata{ID: "local-3", Name: "bass boost", Category: domain.CategorySounds, CreatedAt: base.Add(2 * time.Hour)}},
	}
	for _, rec := range records {
		if err := reg.Save(context.Background(), rec); err != nil {
			t.Fatalf("failed to seed registry: %v", err)
		}
	}
	return reg
}

func TestListService_DefaultSortNewestFirst(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected 3 mods, got %d", resp.Total)
	}
	if resp.Mods[0].Meta.ID != "local-2" || resp.Mods[2].Meta.ID != "local-1" {
		t.Errorf("expected newest first, got %s..%s", resp.Mods[0].Meta.ID, resp.Mods[2].Meta.ID)
	}
}

func TestListService_SortByNameCaseInsensitive(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Execute(context.Background(), ListRequest{SortBy: "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Mods[0].Meta.Name != "Alpine Map" || resp.Mods[1].Meta.Name != "bass boost" {
		t.Errorf("unexpected name order: %v", []string{resp.Mods[0].Meta.Name, resp.Mods[1].Meta.Name, resp.Mods[2].Meta.Name})
	}
}

func TestListService_CategoryFilter(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Execute(context.Background(), ListRequest{Category: "Maps"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 || resp.Mods[0].Meta.ID != "local-2" {
		t.Errorf("expected only the maps mod, got %v", resp.Mods)
	}
}

func TestListService_Reverse(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Execute(context.Background(), ListRequest{SortBy: "name", Reverse: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Mods[0].Meta.Name != "Zebra Skin" {
		t.Errorf("expected reversed order, got %q first", resp.Mods[0].Meta.Name)
	}
}

func TestListService_Search(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Search(context.Background(), SearchRequest{Query: "skin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 || resp.Mods[0].Meta.ID != "local-1" {
		t.Fatalf("expected only the skin mod, got %v", resp.Mods)
	}
}

func TestListService_SearchLimit(t *testing.T) {
	svc := NewListService(seedRegistry(t))

	resp, err := svc.Search(context.Background(), SearchRequest{Query: "local-", Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected limit to cap results at 2, got %d", resp.Total)
	}
}
