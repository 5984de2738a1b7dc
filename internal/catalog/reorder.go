// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"newsdesk/internal/models"
)

// SortUpdate is one entry of a reorder mapping: the target sort key for a
// single record.
type SortUpdate struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// Lift marks a category as picked up for a drag operation. The mark is
// transient: every Move and CancelLift clears it, whatever the outcome.
func (c *Catalog) Lift(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cache.Get(id); !ok {
		return &ReorderError{ID: id, Err: ErrNotFound}
	}
	c.lifted = &id
	return nil
}

// CancelLift discards the pending drag without touching the store.
func (c *Catalog) CancelLift() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lifted = nil
}

// Lifted returns the id of the record currently picked up, if any.
func (c *Catalog) Lifted() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lifted == nil {
		return uuid.Nil, false
	}
	return *c.lifted, true
}

// Move drops the source category immediately before the target and persists
// the resulting sequence keys. It is the drag-and-drop commit path: plan the
// single-element move, renumber densely, then write each changed key to the
// store in order.
//
// Failure modes: a stale source or target id yields a ReorderError and no
// store traffic; a store failure mid-commit yields a SyncError carrying the
// count of updates already durable (see commit). The pending lift mark is
// cleared on every path.
func (c *Catalog) Move(ctx context.Context, sourceID, targetID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.lifted = nil }()

	updates, err := planMove(c.cache.Snapshot(), sourceID, targetID)
	if err != nil {
		// Stale drag references are expected during concurrent edits;
		// a log note is all they warrant.
		slog.Info("reorder aborted", "source", sourceID, "target", targetID, "error", err)
		return err
	}
	if len(updates) == 0 {
		c.notifier.Success(ctx, "Category order unchanged.")
		return nil
	}

	if err := c.commit(ctx, updates); err != nil {
		c.notifier.Error(ctx, "Could not save the new category order.")
		return fmt.Errorf("move category: %w", err)
	}

	c.notifier.Success(ctx, "Category order saved.")
	return nil
}

// planMove computes the reorder mapping for moving source immediately
// before target within the given display-order snapshot. The returned
// mapping holds an entry for every record whose sort key changes, in
// display order, with keys renumbered densely from zero.
//
// Moving a record onto itself is a no-op and returns an empty mapping.
func planMove(snapshot []models.Category, sourceID, targetID uuid.UUID) ([]SortUpdate, error) {
	sourceAt, targetAt := -1, -1
	for i, cat := range snapshot {
		switch cat.ID {
		case sourceID:
			sourceAt = i
		case targetID:
			targetAt = i
		}
	}
	if sourceAt < 0 {
		return nil, &ReorderError{ID: sourceID, Err: ErrNotFound}
	}
	if sourceID == targetID {
		return nil, nil
	}
	if targetAt < 0 {
		return nil, &ReorderError{ID: targetID, Err: ErrNotFound}
	}

	// Remove the source, then reinsert it before the target's post-removal
	// position. This is a single-element move, not a permutation: everything
	// outside the affected span keeps its relative order.
	order := make([]models.Category, 0, len(snapshot))
	order = append(order, snapshot[:sourceAt]...)
	order = append(order, snapshot[sourceAt+1:]...)

	insertAt := len(order)
	for i, cat := range order {
		if cat.ID == targetID {
			insertAt = i
			break
		}
	}

	moved := make([]models.Category, 0, len(snapshot))
	moved = append(moved, order[:insertAt]...)
	moved = append(moved, snapshot[sourceAt])
	moved = append(moved, order[insertAt:]...)

	var updates []SortUpdate
	for i, cat := range moved {
		if cat.SortOrder != i {
			updates = append(updates, SortUpdate{ID: cat.ID, SortOrder: i})
		}
	}
	return updates, nil
}
