// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package recordstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Postgres implements Client over a PostgreSQL database. Each call issues
// exactly one statement on the pool; no call opens a transaction. Collection
// and field names are validated against a fixed whitelist before they are
// interpolated into SQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Postgres-backed record store client.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(...any) error }

// collection describes one served collection: its table, the columns the
// select list covers, the subset writable through Create/Update, and the
// order applied when Query is given no explicit ordering.
type collection struct {
	table        string
	columns      string
	writable     []string
	defaultOrder string
	scan         func(rowScanner) (Record, error)
}

var collections = map[string]collection{
	"categories": {
		table:        "categories",
		columns:      "id, name, slug, description, color, icon, sort_order, is_active, created_at, updated_at",
		writable:     []string{"name", "slug", "description", "color", "icon", "sort_order", "is_active"},
		defaultOrder: "sort_order, name",
		scan:         scanCategoryRecord,
	},
	"articles": {
		table:        "articles",
		columns:      "id, title, slug, category_id, published_at, created_at, updated_at",
		writable:     []string{"title", "slug", "category_id", "published_at"},
		defaultOrder: "created_at DESC",
		scan:         scanArticleRecord,
	},
}

func scanCategoryRecord(row rowScanner) (Record, error) {
	var (
		id          uuid.UUID
		name        string
		slug        string
		description string
		color       sql.NullString
		icon        sql.NullString
		sortOrder   int
		isActive    bool
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	err := row.Scan(&id, &name, &slug, &description, &color, &icon, &sortOrder, &isActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rec := Record{
		"id":          id,
		"name":        name,
		"slug":        slug,
		"description": description,
		"sort_order":  sortOrder,
		"is_active":   isActive,
	}
	if color.Valid {
		rec["color"] = color.String
	}
	if icon.Valid {
		rec["icon"] = icon.String
	}
	if createdAt.Valid {
		rec["created_at"] = createdAt.Time
	}
	if updatedAt.Valid {
		rec["updated_at"] = updatedAt.Time
	}
	return rec, nil
}

func scanArticleRecord(row rowScanner) (Record, error) {
	var (
		id          uuid.UUID
		title       string
		slug        string
		categoryID  uuid.UUID
		publishedAt sql.NullTime
		createdAt   sql.NullTime
		updatedAt   sql.NullTime
	)
	err := row.Scan(&id, &title, &slug, &categoryID, &publishedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rec := Record{
		"id":          id,
		"title":       title,
		"slug":        slug,
		"category_id": categoryID,
	}
	if publishedAt.Valid {
		rec["published_at"] = publishedAt.Time
	}
	if createdAt.Valid {
		rec["created_at"] = createdAt.Time
	}
	if updatedAt.Valid {
		rec["updated_at"] = updatedAt.Time
	}
	return rec, nil
}

// List returns every record in the collection ordered by the given comma-
// separated column list (ascending). An empty orderBy uses the collection's
// default order.
func (p *Postgres) List(ctx context.Context, name, orderBy string) ([]Record, error) {
	col, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", name, ErrUnknownCollection)
	}

	order := col.defaultOrder
	if orderBy != "" {
		validated, err := col.validateOrder(orderBy)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", name, err)
		}
		order = validated
	}

	rows, err := p.db.QueryContext(ctx,
		`SELECT `+col.columns+` FROM `+col.table+` ORDER BY `+order)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	defer rows.Close()

	return col.collect(rows, name)
}

// Create inserts a single record built from the writable fields present in
// the map and returns the record as stored.
func (p *Postgres) Create(ctx context.Context, name string, fields Record) (Record, error) {
	col, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("create %s: %w", name, ErrUnknownCollection)
	}

	cols, args, err := col.writableArgs(fields)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("create %s: no writable fields given", name)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	row := p.db.QueryRowContext(ctx,
		`INSERT INTO `+col.table+` (`+strings.Join(cols, ", ")+`)
		 VALUES (`+strings.Join(placeholders, ", ")+`)
		 RETURNING `+col.columns,
		args...)
	rec, err := col.scan(row)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return rec, nil
}

// Update applies the given writable fields to one record. It is a single
// statement: either the whole record update is durable or none of it is.
func (p *Postgres) Update(ctx context.Context, name string, id uuid.UUID, fields Record) error {
	col, ok := collections[name]
	if !ok {
		return fmt.Errorf("update %s: %w", name, ErrUnknownCollection)
	}

	cols, args, err := col.writableArgs(fields)
	if err != nil {
		return fmt.Errorf("update %s: %w", name, err)
	}
	if len(cols) == 0 {
		return fmt.Errorf("update %s: no writable fields given", name)
	}

	assignments := make([]string, len(cols))
	for i, c := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	args = append(args, id)

	res, err := p.db.ExecContext(ctx,
		`UPDATE `+col.table+` SET `+strings.Join(assignments, ", ")+`,
		 updated_at = NOW() WHERE id = $`+fmt.Sprint(len(args)),
		args...)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", name, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update %s %s: %w", name, id, ErrNotFound)
	}
	return nil
}

// Delete removes one record by id.
func (p *Postgres) Delete(ctx context.Context, name string, id uuid.UUID) error {
	col, ok := collections[name]
	if !ok {
		return fmt.Errorf("delete %s: %w", name, ErrUnknownCollection)
	}

	res, err := p.db.ExecContext(ctx, `DELETE FROM `+col.table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", name, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete %s %s: %w", name, id, ErrNotFound)
	}
	return nil
}

// Query returns records matching every filter constraint, up to limit
// (0 = unlimited), in the collection's default order.
func (p *Postgres) Query(ctx context.Context, name string, filter Filter, limit int) ([]Record, error) {
	col, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("query %s: %w", name, ErrUnknownCollection)
	}

	// Deterministic clause order for stable statements.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var (
		where []string
		args  []any
	)
	for _, k := range keys {
		if !col.knownColumn(k) {
			return nil, fmt.Errorf("query %s: unknown filter field %q", name, k)
		}
		args = append(args, filter[k])
		where = append(where, fmt.Sprintf("%s = $%d", k, len(args)))
	}

	q := `SELECT ` + col.columns + ` FROM ` + col.table
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY ` + col.defaultOrder
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	return col.collect(rows, name)
}

// collect drains rows through the collection's scanner.
func (c collection) collect(rows *sql.Rows, name string) ([]Record, error) {
	var recs []Record
	for rows.Next() {
		rec, err := c.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// writableArgs extracts the writable fields present in the map, in the
// collection's declared column order. Unknown fields are rejected rather
// than silently dropped.
func (c collection) writableArgs(fields Record) ([]string, []any, error) {
	for k := range fields {
		if !c.isWritable(k) {
			return nil, nil, fmt.Errorf("field %q is not writable", k)
		}
	}
	var (
		cols []string
		args []any
	)
	for _, k := range c.writable {
		if v, ok := fields[k]; ok {
			cols = append(cols, k)
			args = append(args, v)
		}
	}
	return cols, args, nil
}

func (c collection) isWritable(field string) bool {
	for _, w := range c.writable {
		if w == field {
			return true
		}
	}
	return false
}

func (c collection) knownColumn(field string) bool {
	for _, col := range strings.Split(c.columns, ", ") {
		if col == field {
			return true
		}
	}
	return false
}

// validateOrder checks every requested order column against the select list.
func (c collection) validateOrder(orderBy string) (string, error) {
	parts := strings.Split(orderBy, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if !c.knownColumn(p) {
			return "", fmt.Errorf("unknown order field %q", p)
		}
		parts[i] = p
	}
	return strings.Join(parts, ", "), nil
}
