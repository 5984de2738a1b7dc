// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named, orderable section of the site. Articles reference
// a category by ID; the ascending order of SortOrder defines the display
// order of the category list.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       *string   `json:"color"`
	Icon        *string   `json:"icon"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryFromRecord decodes a record-store field map into a Category.
// Missing optional fields take their documented defaults: empty description,
// nil color/icon. A record without an id is rejected.
func CategoryFromRecord(rec map[string]any) (Category, error) {
	c := Category{}

	id, err := recordID(rec)
	if err != nil {
		return c, err
	}
	c.ID = id

	c.Name = stringField(rec, "name")
	c.Slug = stringField(rec, "slug")
	c.Description = stringField(rec, "description")
	c.Color = optionalStringField(rec, "color")
	c.Icon = optionalStringField(rec, "icon")
	c.SortOrder = intField(rec, "sort_order")
	c.IsActive = boolField(rec, "is_active")
	c.CreatedAt = timeField(rec, "created_at")
	c.UpdatedAt = timeField(rec, "updated_at")
	return c, nil
}

// Fields returns the writable field map for persisting this category.
// Identity and timestamps are owned by the store and excluded.
func (c *Category) Fields() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"color":       c.Color,
		"icon":        c.Icon,
		"sort_order":  c.SortOrder,
		"is_active":   c.IsActive,
	}
}
