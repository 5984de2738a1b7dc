package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a small set of
// categories in display order and a few articles referencing them. It is a
// no-op when categories already exist.
func Seed(db *sql.DB) error {
	// Check if any categories exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []struct {
		name, slug, description, color, icon string
		sortOrder                            int
	}{
		{"Politics", "politics", "Government, elections, and policy coverage", "#c0392b", "landmark", 0},
		{"Sports", "sports", "Scores, matches, and athletics", "#27ae60", "trophy", 1},
		{"Business", "business", "Markets, companies, and the economy", "#2980b9", "briefcase", 2},
	}

	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug, description, color, icon, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.name, c.slug, c.description, c.color, c.icon, c.sortOrder)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.slug, err)
		}
	}

	// A few articles referencing the seeded categories, so the deletion
	// guard has something to block on in development.
	articles := []struct {
		title, slug, categorySlug string
	}{
		{"Budget vote set for Thursday", "budget-vote-set-for-thursday", "politics"},
		{"City derby ends in a draw", "city-derby-ends-in-a-draw", "sports"},
		{"Local startup raises Series A", "local-startup-raises-series-a", "business"},
	}

	for _, a := range articles {
		_, err := db.Exec(`
			INSERT INTO articles (title, slug, category_id, published_at)
			SELECT $1, $2, id, NOW() FROM categories WHERE slug = $3
		`, a.title, a.slug, a.categorySlug)
		if err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.slug, err)
		}
	}

	slog.Info("database seeded with development categories and articles",
		"categories", len(categories),
		"articles", len(articles),
	)

	return nil
}
