// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is a record in the referencing collection. Articles are owned by
// the editorial pipeline; newsdesk reads them only to list them per category
// and to check whether a category is still referenced before deletion.
type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CategoryID  uuid.UUID  `json:"category_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ArticleFromRecord decodes a record-store field map into an Article.
func ArticleFromRecord(rec map[string]any) (Article, error) {
	a := Article{}

	id, err := recordID(rec)
	if err != nil {
		return a, err
	}
	a.ID = id

	if v, ok := rec["category_id"].(uuid.UUID); ok {
		a.CategoryID = v
	}
	a.Title = stringField(rec, "title")
	a.Slug = stringField(rec, "slug")
	a.PublishedAt = optionalTimeField(rec, "published_at")
	a.CreatedAt = timeField(rec, "created_at")
	a.UpdatedAt = timeField(rec, "updated_at")
	return a, nil
}
