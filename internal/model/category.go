package model

import "strings"

// CategoryOther is the fallback bucket for anything the model cannot place.
const CategoryOther = "other"

// Categories is the closed vocabulary the extractor may assign.
var Categories = []string{
	"food",
	"coffee",
	"groceries",
	"transport",
	"entertainment",
	"shopping",
	"bills",
	"health",
	CategoryOther,
}

// NormalizeCategory lowercases a category and maps anything outside the
// vocabulary (including the empty string) to CategoryOther.
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, known := range Categories {
		if category == known {
			return known
		}
	}
	return CategoryOther
}
