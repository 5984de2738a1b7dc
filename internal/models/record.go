// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed records managed by newsdesk and their
// decoding from the generic field maps the record store speaks. Field
// presence varies per record; decoders apply documented defaults instead
// of failing on absent optional fields.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// recordID extracts the mandatory id field from a record map.
func recordID(rec map[string]any) (uuid.UUID, error) {
	v, ok := rec["id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("record has no id field")
	}
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("parse record id: %w", err)
		}
		return parsed, nil
	default:
		return uuid.Nil, fmt.Errorf("record id has unexpected type %T", v)
	}
}

// stringField returns the named field as a string, or "" if absent or nil.
func stringField(rec map[string]any, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}

// optionalStringField returns the named field as a nullable string.
// Absent, nil, and empty values all decode to nil.
func optionalStringField(rec map[string]any, key string) *string {
	switch v := rec[key].(type) {
	case string:
		if v != "" {
			s := v
			return &s
		}
	case *string:
		if v != nil && *v != "" {
			s := *v
			return &s
		}
	}
	return nil
}

// intField returns the named field as an int, or 0 if absent.
// The store layer may surface integers as int, int32, or int64.
func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// boolField returns the named field as a bool, or false if absent.
func boolField(rec map[string]any, key string) bool {
	v, _ := rec[key].(bool)
	return v
}

// timeField returns the named field as a time.Time, zero if absent.
func timeField(rec map[string]any, key string) time.Time {
	v, _ := rec[key].(time.Time)
	return v
}

// optionalTimeField returns the named field as a nullable time.
func optionalTimeField(rec map[string]any, key string) *time.Time {
	switch v := rec[key].(type) {
	case time.Time:
		if !v.IsZero() {
			t := v
			return &t
		}
	case *time.Time:
		if v != nil && !v.IsZero() {
			t := *v
			return &t
		}
	}
	return nil
}
