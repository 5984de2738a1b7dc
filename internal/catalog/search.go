// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"iter"
	"strings"

	"newsdesk/internal/models"
)

// Search returns a lazy, restartable projection of the category list
// filtered by query. A record matches when the query is empty or is a
// case-insensitive substring of its name, slug, or description. Order is
// the canonical display order; the cache is never mutated.
//
// The sequence re-reads the cache every time it is iterated, so a record
// added after Search is called still shows up on the next iteration.
func (c *Catalog) Search(query string) iter.Seq[models.Category] {
	return func(yield func(models.Category) bool) {
		q := strings.ToLower(strings.TrimSpace(query))
		for _, cat := range c.Snapshot() {
			if !matches(cat, q) {
				continue
			}
			if !yield(cat) {
				return
			}
		}
	}
}

// matches applies the projection rule against a lowercased query.
func matches(cat models.Category, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(cat.Name), q) ||
		strings.Contains(strings.ToLower(cat.Slug), q) ||
		strings.Contains(strings.ToLower(cat.Description), q)
}
