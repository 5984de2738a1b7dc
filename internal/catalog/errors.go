// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound reports a category id that is not in the current cache,
// typically a stale reference held across a concurrent delete.
var ErrNotFound = errors.New("category not found")

// ErrSlugTaken reports a slug collision within the category collection.
var ErrSlugTaken = errors.New("slug already in use")

// LoadError reports a failed full-collection fetch. The prior cache
// contents, if any, are left untouched.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load categories: %v", e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// ReorderError reports a reorder request that referenced a missing record.
// No mutation has been performed.
type ReorderError struct {
	ID  uuid.UUID
	Err error
}

func (e *ReorderError) Error() string { return fmt.Sprintf("reorder %s: %v", e.ID, e.Err) }
func (e *ReorderError) Unwrap() error { return e.Err }

// SyncError reports a reorder commit that failed after part of the mapping
// was durably written. PartialIndex counts the leading updates that are
// durable in the store (and reflected in the cache); nothing past the
// failing update was attempted, and the committed prefix is not rolled back.
type SyncError struct {
	PartialIndex int
	Err          error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sequence sync failed after %d update(s): %v", e.PartialIndex, e.Err)
}
func (e *SyncError) Unwrap() error { return e.Err }

// DeleteReason classifies why a deletion did not happen.
type DeleteReason string

const (
	// DeleteInUse means at least one article still references the category.
	DeleteInUse DeleteReason = "in_use"
	// DeleteStoreFailure means the backing store rejected or failed the
	// delete (or the reference check could not be completed).
	DeleteStoreFailure DeleteReason = "store_failure"
)

// DeleteError reports a blocked or failed deletion. The cache is unchanged.
type DeleteError struct {
	Reason DeleteReason
	Err    error
}

func (e *DeleteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("delete category: %s", e.Reason)
	}
	return fmt.Sprintf("delete category: %s: %v", e.Reason, e.Err)
}
func (e *DeleteError) Unwrap() error { return e.Err }
