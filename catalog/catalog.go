// Package catalog derives the browsable product view: a stable filter
// over the full product list by category and free-text search. Pure
// functions only, no I/O, so it is safe to run on every request and on
// every keystroke a client forwards.
package catalog

import (
	"strings"

	"github.com/Naren-18/Saree-Commerce/models"
)

// Filter returns the products matching the category and query, in the
// order they came in. Category "All" or "" matches everything; the
// query is a case-insensitive substring match against name or
// description, and an empty query matches everything.
func Filter(products []models.Product, category, query string) []models.Product {
	query = strings.ToLower(query)

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesQuery(p, query) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matchesCategory(p models.Product, category string) bool {
	return category == "" || category == models.AllCategories || p.Category == category
}

func matchesQuery(p models.Product, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery)
}
