// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"newsdesk/internal/recordstore"
)

// CanDelete reports whether no article references the category. The check
// is a bounded existence query: one matching article is enough to block,
// so the store is asked for at most one.
func (c *Catalog) CanDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	refs, err := c.store.Query(ctx, articlesCollection, recordstore.Filter{"category_id": id}, 1)
	if err != nil {
		return false, fmt.Errorf("check category references: %w", err)
	}
	return len(refs) == 0, nil
}

// Delete removes a category unless an article still references it.
//
// The guard runs first; a referenced category yields DeleteError(InUse)
// with no mutation anywhere. When the guard clears, a single-record delete
// is issued; only after the store confirms is the record dropped from the
// cache. The surviving records keep their sort keys; the gap is never
// renumbered, and ordering by sort_order tolerates gaps.
//
// Deletion never cascades: referencing articles are not touched.
func (c *Catalog) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, ok := c.cache.Get(id)
	if !ok {
		return fmt.Errorf("delete category %s: %w", id, ErrNotFound)
	}

	unreferenced, err := c.CanDelete(ctx, id)
	if err != nil {
		c.notifier.Error(ctx, "Could not verify category usage.")
		return &DeleteError{Reason: DeleteStoreFailure, Err: err}
	}
	if !unreferenced {
		c.notifier.Error(ctx, fmt.Sprintf("Category %q is still assigned to articles and cannot be deleted.", cat.Name))
		return &DeleteError{Reason: DeleteInUse}
	}

	if err := c.store.Delete(ctx, categoriesCollection, id); err != nil {
		c.notifier.Error(ctx, "Could not delete category.")
		return &DeleteError{Reason: DeleteStoreFailure, Err: err}
	}

	c.cache.Remove(id)
	c.notifier.Success(ctx, fmt.Sprintf("Category %q deleted.", cat.Name))
	return nil
}
