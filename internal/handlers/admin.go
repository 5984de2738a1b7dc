// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the newsdesk admin API.
// The API is JSON-only: the presentation layer (the drag-and-drop category
// manager) consumes it and renders its own UI. Handlers receive their
// dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"newsdesk/internal/catalog"
	"newsdesk/internal/models"
	"newsdesk/internal/notify"
	"newsdesk/internal/recordstore"
)

// Admin groups the category admin handlers and their dependencies.
type Admin struct {
	catalog  *catalog.Catalog
	store    recordstore.Client
	reporter *notify.Reporter
}

// NewAdmin creates the admin handler group.
func NewAdmin(cat *catalog.Catalog, store recordstore.Client, reporter *notify.Reporter) *Admin {
	return &Admin{catalog: cat, store: store, reporter: reporter}
}

// categoryPayload is the JSON body for create and edit requests.
type categoryPayload struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
}

// CategoriesList returns the category list filtered by the optional ?q=
// query, in display order.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	categories := []models.Category{}
	for cat := range a.catalog.Search(q) {
		categories = append(categories, cat)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"query":      q,
	})
}

// CategoryCreate creates a new category at the end of the display order.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if payload.Name == nil {
		respondError(w, http.StatusBadRequest, "Name is required.")
		return
	}

	cat := models.Category{Name: *payload.Name, IsActive: true}
	payload.apply(&cat)
	if msg := validateCategory(cat); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.catalog.Create(r.Context(), cat)
	if err != nil {
		if errors.Is(err, catalog.ErrSlugTaken) {
			respondError(w, http.StatusConflict, "A category with this slug already exists.")
			return
		}
		slog.Error("create category failed", "error", err)
		respondError(w, http.StatusBadGateway, "Could not create category.")
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// CategoryUpdate edits a category's non-ordering fields. Absent payload
// fields keep their current value.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cat, found := a.catalog.Get(id)
	if !found {
		respondError(w, http.StatusNotFound, "Category not found.")
		return
	}

	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	payload.apply(&cat)
	if msg := validateCategory(cat); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.catalog.Update(r.Context(), cat)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "Category not found.")
		case errors.Is(err, catalog.ErrSlugTaken):
			respondError(w, http.StatusConflict, "A category with this slug already exists.")
		default:
			slog.Error("update category failed", "id", id, "error", err)
			respondError(w, http.StatusBadGateway, "Could not save category.")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// CategoryToggle flips a category's is_active flag.
func (a *Admin) CategoryToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	cat, err := a.catalog.ToggleActive(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found.")
			return
		}
		slog.Error("toggle category failed", "id", id, "error", err)
		respondError(w, http.StatusBadGateway, "Could not update category status.")
		return
	}

	respondJSON(w, http.StatusOK, cat)
}

// movePayload is the JSON body for reorder requests: the category from the
// URL is dropped immediately before target_id.
type movePayload struct {
	TargetID uuid.UUID `json:"target_id"`
}

// CategoryMove reorders the list by a single-element move and persists the
// new sequence keys.
func (a *Admin) CategoryMove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload movePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TargetID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "target_id is required.")
		return
	}

	err := a.catalog.Move(r.Context(), id, payload.TargetID)
	if err != nil {
		var reorderErr *catalog.ReorderError
		var syncErr *catalog.SyncError
		switch {
		case errors.As(err, &reorderErr):
			respondError(w, http.StatusNotFound, "Category not found.")
		case errors.As(err, &syncErr):
			// Part of the new order may already be durable; the client
			// should refresh and let the user retry.
			respondJSON(w, http.StatusBadGateway, map[string]any{
				"error":         "Could not save the new category order.",
				"partial_index": syncErr.PartialIndex,
			})
		default:
			slog.Error("move category failed", "id", id, "error", err)
			respondError(w, http.StatusBadGateway, "Could not save the new category order.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": a.catalog.Snapshot(),
	})
}

// CategoryDelete removes a category unless articles still reference it.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := a.catalog.Delete(r.Context(), id)
	if err != nil {
		var deleteErr *catalog.DeleteError
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			respondError(w, http.StatusNotFound, "Category not found.")
		case errors.As(err, &deleteErr) && deleteErr.Reason == catalog.DeleteInUse:
			respondError(w, http.StatusConflict,
				"This category is still assigned to articles. Reassign them before deleting it.")
		default:
			slog.Error("delete category failed", "id", id, "error", err)
			respondError(w, http.StatusBadGateway, "Could not delete category.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// CategoriesRefresh reloads the category list from the record store. This
// is the user-initiated retry path after a load or sync failure.
func (a *Admin) CategoriesRefresh(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.Refresh(r.Context()); err != nil {
		slog.Error("refresh categories failed", "error", err)
		respondError(w, http.StatusBadGateway, "Could not load categories.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"categories": a.catalog.Snapshot(),
	})
}

// ArticlesList returns articles, optionally filtered to one category via
// ?category=. Read-only: articles are owned by the editorial pipeline.
func (a *Admin) ArticlesList(w http.ResponseWriter, r *http.Request) {
	filter := recordstore.Filter{}
	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid category id.")
			return
		}
		filter["category_id"] = categoryID
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = parsed
	}

	recs, err := a.store.Query(r.Context(), "articles", filter, limit)
	if err != nil {
		slog.Error("list articles failed", "error", err)
		respondError(w, http.StatusBadGateway, "Could not load articles.")
		return
	}

	articles := []models.Article{}
	for _, rec := range recs {
		article, err := models.ArticleFromRecord(rec)
		if err != nil {
			slog.Warn("skipping malformed article record", "error", err)
			continue
		}
		articles = append(articles, article)
	}

	respondJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// Notifications returns the unexpired status notifications, oldest first.
func (a *Admin) Notifications(w http.ResponseWriter, r *http.Request) {
	pending, err := a.reporter.Pending(r.Context())
	if err != nil {
		slog.Error("list notifications failed", "error", err)
		respondError(w, http.StatusBadGateway, "Could not load notifications.")
		return
	}
	if pending == nil {
		pending = []notify.Notification{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"notifications": pending})
}

// apply copies the payload's present fields onto the category. An empty
// color or icon clears the hint.
func (p *categoryPayload) apply(cat *models.Category) {
	if p.Name != nil {
		cat.Name = *p.Name
	}
	if p.Slug != nil {
		cat.Slug = *p.Slug
	}
	if p.Description != nil {
		cat.Description = *p.Description
	}
	if p.Color != nil {
		cat.Color = optional(*p.Color)
	}
	if p.Icon != nil {
		cat.Icon = optional(*p.Icon)
	}
	if p.IsActive != nil {
		cat.IsActive = *p.IsActive
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id.")
		return uuid.Nil, false
	}
	return id, true
}
