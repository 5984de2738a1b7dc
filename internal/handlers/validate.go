package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"newsdesk/internal/models"
)

// Validation limits for category fields.
const (
	maxNameLen        = 120
	maxSlugLen        = 120
	maxDescriptionLen = 1_000
)

// hexColor matches display hints like "#c0392b" or "#fff".
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateCategory checks category inputs and returns the first error found.
func validateCategory(cat models.Category) string {
	name := strings.TrimSpace(cat.Name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 120 characters)."
	}
	if utf8.RuneCountInString(cat.Slug) > maxSlugLen {
		return "Slug is too long (max 120 characters)."
	}
	if utf8.RuneCountInString(cat.Description) > maxDescriptionLen {
		return "Description is too long (max 1,000 characters)."
	}
	if cat.Color != nil && !hexColor.MatchString(*cat.Color) {
		return "Color must be a hex value like #c0392b."
	}
	return ""
}
