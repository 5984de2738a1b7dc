package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCategoryFromRecordDefaults(t *testing.T) {
	id := uuid.New()

	// Minimal record: only identity and name. Everything optional takes
	// its documented default.
	cat, err := CategoryFromRecord(map[string]any{
		"id":   id,
		"name": "Politics",
	})
	if err != nil {
		t.Fatalf("CategoryFromRecord: %v", err)
	}

	if cat.ID != id {
		t.Errorf("id: got %v, want %v", cat.ID, id)
	}
	if cat.Description != "" {
		t.Errorf("description default: got %q, want empty", cat.Description)
	}
	if cat.Color != nil || cat.Icon != nil {
		t.Errorf("display hints default: got %v/%v, want nil/nil", cat.Color, cat.Icon)
	}
	if cat.SortOrder != 0 {
		t.Errorf("sort_order default: got %d, want 0", cat.SortOrder)
	}
	if cat.IsActive {
		t.Error("is_active default: got true, want false")
	}
}

func TestCategoryFromRecordFullRecord(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	cat, err := CategoryFromRecord(map[string]any{
		"id":          id.String(), // string ids are accepted too
		"name":        "Sports",
		"slug":        "sports",
		"description": "Scores and matches",
		"color":       "#27ae60",
		"icon":        "trophy",
		"sort_order":  int64(3), // drivers may surface int64
		"is_active":   true,
		"created_at":  now,
		"updated_at":  now,
	})
	if err != nil {
		t.Fatalf("CategoryFromRecord: %v", err)
	}

	if cat.ID != id {
		t.Errorf("id: got %v, want %v", cat.ID, id)
	}
	if cat.SortOrder != 3 {
		t.Errorf("sort_order: got %d, want 3", cat.SortOrder)
	}
	if cat.Color == nil || *cat.Color != "#27ae60" {
		t.Errorf("color: got %v, want #27ae60", cat.Color)
	}
	if cat.Icon == nil || *cat.Icon != "trophy" {
		t.Errorf("icon: got %v, want trophy", cat.Icon)
	}
	if !cat.CreatedAt.Equal(now) {
		t.Errorf("created_at: got %v, want %v", cat.CreatedAt, now)
	}
}

func TestCategoryFromRecordRejectsMissingID(t *testing.T) {
	if _, err := CategoryFromRecord(map[string]any{"name": "Ghost"}); err == nil {
		t.Fatal("expected error for record without id")
	}
	if _, err := CategoryFromRecord(map[string]any{"id": "not-a-uuid"}); err == nil {
		t.Fatal("expected error for malformed id")
	}
}

func TestCategoryFieldsExcludeIdentity(t *testing.T) {
	color := "#2980b9"
	cat := Category{
		ID:        uuid.New(),
		Name:      "Business",
		Slug:      "business",
		Color:     &color,
		SortOrder: 2,
		IsActive:  true,
	}

	fields := cat.Fields()
	if _, ok := fields["id"]; ok {
		t.Error("fields must not carry the id")
	}
	if _, ok := fields["created_at"]; ok {
		t.Error("fields must not carry timestamps")
	}
	if fields["name"] != "Business" || fields["sort_order"] != 2 {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestArticleFromRecord(t *testing.T) {
	id := uuid.New()
	categoryID := uuid.New()
	published := time.Now()

	a, err := ArticleFromRecord(map[string]any{
		"id":           id,
		"title":        "Budget vote set for Thursday",
		"slug":         "budget-vote-set-for-thursday",
		"category_id":  categoryID,
		"published_at": published,
	})
	if err != nil {
		t.Fatalf("ArticleFromRecord: %v", err)
	}

	if a.CategoryID != categoryID {
		t.Errorf("category_id: got %v, want %v", a.CategoryID, categoryID)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(published) {
		t.Errorf("published_at: got %v, want %v", a.PublishedAt, published)
	}
}

func TestArticleFromRecordDraftHasNoPublishedAt(t *testing.T) {
	a, err := ArticleFromRecord(map[string]any{
		"id":          uuid.New(),
		"title":       "Draft piece",
		"category_id": uuid.New(),
	})
	if err != nil {
		t.Fatalf("ArticleFromRecord: %v", err)
	}
	if a.PublishedAt != nil {
		t.Errorf("published_at: got %v, want nil", a.PublishedAt)
	}
}
