// Package catalog implements the pure filter/sort pipeline over property
// listings. It never mutates its input and has no dependencies beyond the
// property record shape.
package catalog

import (
	"sort"
	"strings"
	"time"

	"carevacay/internal/domain/property"
)

type SortKey string

const (
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

func (s SortKey) IsValid() bool {
	switch s {
	case SortPriceLow, SortPriceHigh, SortNewest, SortRating:
		return true
	default:
		return false
	}
}

// FilterSpec is a transient per-request value. A zero field imposes no
// constraint; filtering is conjunctive across all populated fields.
type FilterSpec struct {
	Location string

	StayTypes []property.StayType

	// Price bounds in cents, inclusive. Nil = unbounded.
	MinPriceCents *int64
	MaxPriceCents *int64

	// Date range is part of the search contract but not matched yet:
	// availability filtering needs booking occupancy data this service does
	// not hold. Populate only once occupancy-aware matching exists.
	CheckIn  *time.Time
	CheckOut *time.Time

	Guests int

	AccessibilityFeatures []string
	Amenities             []string
}

// Search applies spec to the catalog and returns a new, ordered slice.
// A contradictory spec (min > max price) yields an empty result, not an
// error. The sort is stable: ties preserve catalog order.
func Search(catalog []*property.Property, spec FilterSpec, key SortKey) []*property.Property {
	result := make([]*property.Property, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, spec) {
			result = append(result, p)
		}
	}
	sortProperties(result, key)
	return result
}

func matches(p *property.Property, spec FilterSpec) bool {
	if !matchLocation(p, spec.Location) {
		return false
	}
	if len(spec.StayTypes) > 0 && !containsStayType(spec.StayTypes, p.StayType) {
		return false
	}
	if spec.MinPriceCents != nil && p.BasePriceCents < *spec.MinPriceCents {
		return false
	}
	if spec.MaxPriceCents != nil && p.BasePriceCents > *spec.MaxPriceCents {
		return false
	}
	if spec.Guests > 0 && p.MaxGuests < spec.Guests {
		return false
	}
	if !p.HasFeatures(spec.AccessibilityFeatures) {
		return false
	}
	if !p.HasAmenities(spec.Amenities) {
		return false
	}
	return true
}

// matchLocation does a case-insensitive substring match against the city,
// widening to "city state" when the query carries multiple tokens.
func matchLocation(p *property.Property, location string) bool {
	query := strings.ToLower(strings.TrimSpace(location))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(p.City)
	if len(strings.Fields(query)) > 1 {
		haystack = strings.ToLower(p.City + " " + p.State)
	}
	return strings.Contains(haystack, query)
}

func containsStayType(types []property.StayType, t property.StayType) bool {
	for _, st := range types {
		if st == t {
			return true
		}
	}
	return false
}

func sortProperties(ps []*property.Property, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].BasePriceCents < ps[j].BasePriceCents
		})
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].BasePriceCents > ps[j].BasePriceCents
		})
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].CreatedAt.After(ps[j].CreatedAt)
		})
	case SortRating:
		// No rating aggregate exists yet; falls back to price descending.
		// TODO: rank by review average once the review pipeline lands.
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].BasePriceCents > ps[j].BasePriceCents
		})
	}
}
