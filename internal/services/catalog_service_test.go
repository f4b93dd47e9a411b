package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("slug derived from name when missing", func(t *testing.T) {
		repo := &mockFAQRepo{}
		svc := NewCatalogService(repo, nil)

		cat := &models.FAQCategory{Name: "Battery Issues", IsActive: true}
		if err := svc.CreateCategory(ctx, cat); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		if cat.Slug != "battery-issues" {
			t.Errorf("slug = %q, want battery-issues", cat.Slug)
		}
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewCatalogService(&mockFAQRepo{}, nil)
		if err := svc.CreateCategory(ctx, &models.FAQCategory{Slug: "x"}); err == nil {
			t.Error("expected validation error for missing name")
		}
	})
}

func TestCatalogService_CreateItem(t *testing.T) {
	ctx := context.Background()
	repo := &mockFAQRepo{}
	svc := NewCatalogService(repo, nil)

	cat := &models.FAQCategory{Name: "Battery", Slug: "battery", IsActive: true}
	if err := svc.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	t.Run("valid item stored", func(t *testing.T) {
		item := &models.FAQItem{
			CategoryID: cat.ID,
			Question:   "Why won't it charge?",
			Answer:     "Check the charger.",
			Keywords:   []string{"charge"},
			IsActive:   true,
		}
		if err := svc.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	})

	t.Run("missing answer rejected", func(t *testing.T) {
		item := &models.FAQItem{CategoryID: cat.ID, Question: "Q"}
		if err := svc.CreateItem(ctx, item); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		item := &models.FAQItem{
			CategoryID: primitive.NewObjectID(),
			Question:   "Q",
			Answer:     "A",
		}
		if err := svc.CreateItem(ctx, item); err == nil {
			t.Error("expected error for unknown category")
		}
	})
}

func TestCatalogService_DeleteCategoryWithItems(t *testing.T) {
	ctx := context.Background()
	repo := &mockFAQRepo{}
	svc := NewCatalogService(repo, nil)

	cat := &models.FAQCategory{Name: "Battery", Slug: "battery", IsActive: true}
	if err := svc.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	item := &models.FAQItem{CategoryID: cat.ID, Question: "Q", Answer: "A", IsActive: true}
	if err := svc.CreateItem(ctx, item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := svc.DeleteCategory(ctx, cat.ID); err == nil {
		t.Error("expected delete of non-empty category to be rejected")
	}
}

func TestCatalogService_ActiveCatalogFiltersInactive(t *testing.T) {
	ctx := context.Background()
	repo := &mockFAQRepo{}
	svc := NewCatalogService(repo, nil)

	active := &models.FAQCategory{Name: "Battery", Slug: "battery", IsActive: true}
	inactive := &models.FAQCategory{Name: "Old", Slug: "old", IsActive: false}
	for _, cat := range []*models.FAQCategory{active, inactive} {
		if err := svc.CreateCategory(ctx, cat); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
	}
	items := []*models.FAQItem{
		{CategoryID: active.ID, Question: "Q1", Answer: "A1", IsActive: true},
		{CategoryID: active.ID, Question: "Q2", Answer: "A2", IsActive: false},
	}
	for _, item := range items {
		if err := svc.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	catalog, err := svc.ActiveCatalog(ctx)
	if err != nil {
		t.Fatalf("ActiveCatalog failed: %v", err)
	}
	if len(catalog.Categories) != 1 {
		t.Errorf("expected 1 active category, got %d", len(catalog.Categories))
	}
	if len(catalog.Items) != 1 {
		t.Errorf("expected 1 active item, got %d", len(catalog.Items))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Battery Issues", "battery-issues"},
		{"Find My Scooter", "find-my-scooter"},
		{"Safety & Accidents", "safety-accidents"},
		{"  Spaces  ", "spaces"},
		{"Model-X2", "model-x2"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
