// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"newsdesk/internal/models"
	"newsdesk/internal/recordstore"
)

// Cache is the canonical in-memory category list, kept in ascending
// sort_order (ties broken by name, matching the store's list order).
// It is the single source of truth for projection and reordering; every
// observable change goes through Load, Upsert, or Remove.
//
// Sort orders are contiguous 0..n-1 only at quiescence after a full
// successful reorder commit. Deletes leave gaps and partial commits leave
// mixed old/new keys; the cache orders whatever it holds and never repairs.
type Cache struct {
	records []models.Category
	index   map[uuid.UUID]int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{index: make(map[uuid.UUID]int)}
}

// Load replaces the entire cache with a full fetch from the store, ordered
// by sort_order. On fetch or decode failure the prior contents are kept and
// a LoadError is returned.
func (c *Cache) Load(ctx context.Context, store recordstore.Client) error {
	recs, err := store.List(ctx, categoriesCollection, "sort_order, name")
	if err != nil {
		return &LoadError{Err: err}
	}

	loaded := make([]models.Category, 0, len(recs))
	for _, rec := range recs {
		cat, err := models.CategoryFromRecord(rec)
		if err != nil {
			return &LoadError{Err: err}
		}
		loaded = append(loaded, cat)
	}

	c.records = loaded
	c.reindex()
	return nil
}

// Upsert inserts or replaces a record and restores the cache's ordering.
// It never fails; ordering invariants are the caller's concern.
func (c *Cache) Upsert(cat models.Category) {
	if i, ok := c.index[cat.ID]; ok {
		c.records[i] = cat
	} else {
		c.records = append(c.records, cat)
	}
	c.reindex()
}

// Remove drops a record by id. The surviving sort orders are left as-is:
// the gap is never renumbered.
func (c *Cache) Remove(id uuid.UUID) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.reindex()
}

// Get returns a copy of the record with the given id.
func (c *Cache) Get(id uuid.UUID) (models.Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Category{}, false
	}
	return c.records[i], true
}

// Snapshot returns a copy of the full list in display order.
func (c *Cache) Snapshot() []models.Category {
	out := make([]models.Category, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of cached records.
func (c *Cache) Len() int { return len(c.records) }

// reindex re-sorts the list and rebuilds the id index.
func (c *Cache) reindex() {
	sort.SliceStable(c.records, func(i, j int) bool {
		a, b := c.records[i], c.records[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})
	c.index = make(map[uuid.UUID]int, len(c.records))
	for i, rec := range c.records {
		c.index[rec.ID] = i
	}
}
