// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog is the ordered-collection synchronization engine behind
// the category admin surface. It owns the canonical in-memory category list,
// the search projection over it, the drag-reorder planner, the sequential
// sequence-key persistence, and the referential-integrity delete guard.
//
// The backing record store offers no multi-record transactions, so every
// multi-record operation here is an explicit sequence of single-record calls
// with documented partial-failure behavior.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"newsdesk/internal/models"
	"newsdesk/internal/recordstore"
	"newsdesk/internal/slug"
)

const (
	categoriesCollection = "categories"
	articlesCollection   = "articles"
)

// Notifier receives the outcome of catalog operations for display to the
// user. Implementations must not fail the surrounding operation.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// Catalog ties the cache, the record store, and the notifier together and
// serializes all mutating operations. Concurrent calls are safe; they are
// executed one at a time, which is what keeps the sequential commit loop's
// durable-prefix accounting meaningful.
type Catalog struct {
	store    recordstore.Client
	notifier Notifier

	mu     sync.Mutex
	cache  *Cache
	lifted *uuid.UUID
}

// New returns a Catalog over the given store. The cache starts empty;
// call Refresh to populate it.
func New(store recordstore.Client, notifier Notifier) *Catalog {
	return &Catalog{
		store:    store,
		notifier: notifier,
		cache:    NewCache(),
	}
}

// Refresh reloads the full category list from the store. On failure the
// previously loaded list stays available.
func (c *Catalog) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cache.Load(ctx, c.store); err != nil {
		c.notifier.Error(ctx, "Could not load categories. Please retry.")
		return err
	}
	return nil
}

// Get returns the cached category with the given id.
func (c *Catalog) Get(id uuid.UUID) (models.Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(id)
}

// Snapshot returns the cached list in display order.
func (c *Catalog) Snapshot() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Snapshot()
}

// Create persists a new category and adds it to the cache. A missing slug is
// generated from the name; the record is appended at the end of the display
// order and starts active unless stated otherwise.
func (c *Catalog) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return models.Category{}, fmt.Errorf("create category: name is required")
	}
	if cat.Slug == "" {
		cat.Slug = slug.Generate(cat.Name)
	}
	if c.slugInUse(cat.Slug, uuid.Nil) {
		return models.Category{}, fmt.Errorf("create category %q: %w", cat.Slug, ErrSlugTaken)
	}
	cat.SortOrder = c.nextSortOrder()

	rec, err := c.store.Create(ctx, categoriesCollection, cat.Fields())
	if err != nil {
		c.notifier.Error(ctx, "Could not create category.")
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	created, err := models.CategoryFromRecord(rec)
	if err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}

	c.cache.Upsert(created)
	c.notifier.Success(ctx, fmt.Sprintf("Category %q created.", created.Name))
	return created, nil
}

// Update persists edits to a category's non-ordering fields and reflects
// them in the cache. SortOrder changes are the reorder engine's job and are
// ignored here.
func (c *Catalog) Update(ctx context.Context, cat models.Category) (models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.cache.Get(cat.ID)
	if !ok {
		return models.Category{}, fmt.Errorf("update category %s: %w", cat.ID, ErrNotFound)
	}

	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return models.Category{}, fmt.Errorf("update category: name is required")
	}
	if cat.Slug == "" {
		cat.Slug = slug.Generate(cat.Name)
	}
	if c.slugInUse(cat.Slug, cat.ID) {
		return models.Category{}, fmt.Errorf("update category %q: %w", cat.Slug, ErrSlugTaken)
	}

	cat.SortOrder = current.SortOrder
	cat.IsActive = current.IsActive
	err := c.store.Update(ctx, categoriesCollection, cat.ID, recordstore.Record{
		"name":        cat.Name,
		"slug":        cat.Slug,
		"description": cat.Description,
		"color":       cat.Color,
		"icon":        cat.Icon,
	})
	if err != nil {
		c.notifier.Error(ctx, "Could not save category.")
		return models.Category{}, fmt.Errorf("update category %s: %w", cat.ID, err)
	}

	c.cache.Upsert(cat)
	c.notifier.Success(ctx, fmt.Sprintf("Category %q saved.", cat.Name))
	return cat, nil
}

// ToggleActive flips a category's is_active flag. Activation state is
// independent of ordering; sort keys are untouched.
func (c *Catalog) ToggleActive(ctx context.Context, id uuid.UUID) (models.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.cache.Get(id)
	if !ok {
		return models.Category{}, fmt.Errorf("toggle category %s: %w", id, ErrNotFound)
	}

	cat.IsActive = !cat.IsActive
	err := c.store.Update(ctx, categoriesCollection, id, recordstore.Record{
		"is_active": cat.IsActive,
	})
	if err != nil {
		c.notifier.Error(ctx, "Could not update category status.")
		return models.Category{}, fmt.Errorf("toggle category %s: %w", id, err)
	}

	c.cache.Upsert(cat)
	state := "deactivated"
	if cat.IsActive {
		state = "activated"
	}
	c.notifier.Success(ctx, fmt.Sprintf("Category %q %s.", cat.Name, state))
	return cat, nil
}

// slugInUse reports whether another cached category already owns slug.
func (c *Catalog) slugInUse(s string, self uuid.UUID) bool {
	for _, cat := range c.cache.Snapshot() {
		if cat.Slug == s && cat.ID != self {
			return true
		}
	}
	return false
}

// nextSortOrder returns max(sort_order)+1, or 0 for an empty list. New
// records always append; gaps left by deletions are not reused.
func (c *Catalog) nextSortOrder() int {
	next := 0
	for _, cat := range c.cache.Snapshot() {
		if cat.SortOrder >= next {
			next = cat.SortOrder + 1
		}
	}
	return next
}
