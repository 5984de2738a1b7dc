// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"

	"newsdesk/internal/recordstore"
)

// commit persists a reorder mapping one record at a time, in mapping order,
// and reconciles the cache with whatever became durable.
//
// The store has no multi-record transaction, so this is deliberately a
// plain fold threading a committed-so-far count: each update is awaited
// before the next is issued. On the first failure no further updates are
// attempted and a SyncError reports how many leading updates are durable.
// The committed prefix is NOT rolled back; store and cache then disagree
// with the pre-commit order until the user retries or refreshes.
//
// Callers must hold c.mu: a second commit interleaved with this loop would
// make the durable-prefix count meaningless.
func (c *Catalog) commit(ctx context.Context, updates []SortUpdate) error {
	committed := 0
	for _, u := range updates {
		err := c.store.Update(ctx, categoriesCollection, u.ID, recordstore.Record{
			"sort_order": u.SortOrder,
		})
		if err != nil {
			c.reconcile(updates[:committed])
			return &SyncError{PartialIndex: committed, Err: err}
		}
		committed++
	}

	c.reconcile(updates)
	return nil
}

// reconcile applies the durably committed slice of a mapping to the cache.
// Records deleted concurrently are skipped.
func (c *Catalog) reconcile(applied []SortUpdate) {
	for _, u := range applied {
		cat, ok := c.cache.Get(u.ID)
		if !ok {
			continue
		}
		cat.SortOrder = u.SortOrder
		c.cache.Upsert(cat)
	}
}
