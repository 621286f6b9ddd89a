package store

import (
	"sort"
	"strings"

	"github.com/Aayushsah6969/ShoeStore/models"
)

type SortKey string

const (
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortNewest     SortKey = "newest"
	SortPopularity SortKey = "popularity"
)

// FilterState is a query descriptor over the catalog. It is a plain value:
// applying it never mutates the product list it is given.
type FilterState struct {
	Search     string     `json:"search"`
	PriceRange [2]float64 `json:"price_range"`
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"`
	SortBy     SortKey    `json:"sort_by"`
}

// DefaultFilters matches everything and sorts by popularity.
func DefaultFilters() FilterState {
	return FilterState{
		PriceRange: [2]float64{0, 10000},
		SortBy:     SortPopularity,
	}
}

// Apply returns the products passing every active predicate, totally
// ordered by the sort key. Pure: same inputs, same output, inputs untouched.
func (f FilterState) Apply(products []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	default: // popularity
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

func (f FilterState) matches(p models.Product) bool {
	// Case-insensitive substring match on name or brand.
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}

	// Inclusive price bounds.
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}

	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !contains(f.Brands, p.Brand) {
		return false
	}

	// Size/color predicates want a non-empty intersection with the
	// product's available sets.
	if len(f.Sizes) > 0 && !intersects(f.Sizes, p.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !intersects(f.Colors, p.Colors) {
		return false
	}

	return true
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, s := range a {
		if contains(b, s) {
			return true
		}
	}
	return false
}
