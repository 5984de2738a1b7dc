// Package router sets up all HTTP routes and middleware chains for the
// newsdesk admin API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/handlers"
	"newsdesk/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. Authentication is handled upstream by the
// hosting platform; this router only serves the category admin surface.
func New(admin *handlers.Admin) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

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

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
