// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for the admin API
// tests: an in-memory record store fake, a miniredis-backed reporter, and
// a fully routed test server.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"newsdesk/internal/catalog"
	"newsdesk/internal/middleware"
	"newsdesk/internal/notify"
	"newsdesk/internal/recordstore"
)

// memStore is an in-memory recordstore.Client covering what the handlers
// exercise: the categories collection plus article queries.
type memStore struct {
	categories map[uuid.UUID]recordstore.Record
	articles   []recordstore.Record
	failUpdate bool
}

func newMemStore() *memStore {
	return &memStore{categories: make(map[uuid.UUID]recordstore.Record)}
}

func (m *memStore) List(_ context.Context, collection, _ string) ([]recordstore.Record, error) {
	if collection != "categories" {
		return nil, recordstore.ErrUnknownCollection
	}
	recs := make([]recordstore.Record, 0, len(m.categories))
	for _, rec := range m.categories {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i]["sort_order"].(int) < recs[j]["sort_order"].(int)
	})
	return recs, nil
}

func (m *memStore) Create(_ context.Context, collection string, fields recordstore.Record) (recordstore.Record, error) {
	if collection != "categories" {
		return nil, recordstore.ErrUnknownCollection
	}
	rec := recordstore.Record{"id": uuid.New(), "created_at": time.Now(), "updated_at": time.Now()}
	for k, v := range fields {
		rec[k] = v
	}
	m.categories[rec["id"].(uuid.UUID)] = rec
	return rec, nil
}

func (m *memStore) Update(_ context.Context, collection string, id uuid.UUID, fields recordstore.Record) error {
	if collection != "categories" {
		return recordstore.ErrUnknownCollection
	}
	if m.failUpdate {
		return errors.New("store unavailable")
	}
	rec, ok := m.categories[id]
	if !ok {
		return recordstore.ErrNotFound
	}
	for k, v := range fields {
		rec[k] = v
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, collection string, id uuid.UUID) error {
	if collection != "categories" {
		return recordstore.ErrUnknownCollection
	}
	if _, ok := m.categories[id]; !ok {
		return recordstore.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memStore) Query(_ context.Context, collection string, filter recordstore.Filter, limit int) ([]recordstore.Record, error) {
	if collection != "articles" {
		return nil, recordstore.ErrUnknownCollection
	}
	var out []recordstore.Record
	for _, rec := range m.articles {
		if want, ok := filter["category_id"]; ok && rec["category_id"] != want {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) addCategory(name, slug string, sortOrder int) uuid.UUID {
	id := uuid.New()
	m.categories[id] = recordstore.Record{
		"id": id, "name": name, "slug": slug, "description": "",
		"sort_order": sortOrder, "is_active": true,
		"created_at": time.Now(), "updated_at": time.Now(),
	}
	return id
}

func (m *memStore) addArticle(title string, categoryID uuid.UUID) {
	m.articles = append(m.articles, recordstore.Record{
		"id": uuid.New(), "title": title, "slug": title,
		"category_id": categoryID, "created_at": time.Now(),
	})
}

// testServer wires a loaded catalog, a miniredis reporter, and the full
// middleware chain into an httptest server-compatible router.
func testServer(t *testing.T, store *memStore) (chi.Router, *notify.Reporter) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	reporter := notify.NewReporter(client, time.Minute)

	cat := catalog.New(store, reporter)
	if err := cat.Refresh(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	admin := NewAdmin(cat, store, reporter)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/admin", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", admin.CategoriesList)
			r.Post("/", admin.CategoryCreate)
			r.Post("/refresh", admin.CategoriesRefresh)
			r.Patch("/{id}", admin.CategoryUpdate)
			r.Post("/{id}/toggle", admin.CategoryToggle)
			r.Post("/{id}/move", admin.CategoryMove)
			r.Delete("/{id}", admin.CategoryDelete)
		})
		r.Get("/articles", admin.ArticlesList)
		r.Get("/notifications", admin.Notifications)
	})

	return r, reporter
}

// do issues a request against the router and returns the recorder.
func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals a JSON response body into out.
func decode(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

// listedNames extracts category names from a list response.
type categoryListResponse struct {
	Categories []struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Slug      string    `json:"slug"`
		SortOrder int       `json:"sort_order"`
		IsActive  bool      `json:"is_active"`
	} `json:"categories"`
	Query string `json:"query"`
}

func listedNames(resp categoryListResponse) []string {
	out := make([]string, len(resp.Categories))
	for i, c := range resp.Categories {
		out[i] = c.Name
	}
	return out
}
