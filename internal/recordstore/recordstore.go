// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package recordstore defines the client boundary to the hosted record store
// backing newsdesk. The store exposes only single-record primitives: there is
// no batching and no multi-record transaction. Every call is an independent
// round trip, and callers that need multi-record consistency must sequence
// calls themselves and account for partial completion.
package recordstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Record is the generic field map a collection record travels as on the
// store boundary. Typed decoding lives in the models package.
type Record map[string]any

// Filter is a conjunction of field equality constraints for Query.
type Filter map[string]any

// ErrNotFound is returned when the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrUnknownCollection is returned for a collection name the store does
// not serve.
var ErrUnknownCollection = errors.New("unknown collection")

// Client is the record store consumed by the rest of the system.
//
// List returns all records of a collection ordered by the given comma-
// separated field list. Create inserts a single record and returns it as
// stored (with generated id and timestamps). Update and Delete address one
// record by id. Query returns records matching every filter constraint,
// up to limit (0 = no limit), in the collection's default order.
type Client interface {
	List(ctx context.Context, collection, orderBy string) ([]Record, error)
	Create(ctx context.Context, collection string, fields Record) (Record, error)
	Update(ctx context.Context, collection string, id uuid.UUID, fields Record) error
	Delete(ctx context.Context, collection string, id uuid.UUID) error
	Query(ctx context.Context, collection string, filter Filter, limit int) ([]Record, error)
}
