package request

import (
	"carevacay/internal/domain/catalog"
	"carevacay/internal/domain/property"
)

const dateLayout = "2006-01-02"

type SearchRequest struct {
	Location  string   `json:"location,omitempty"`
	StayTypes []string `json:"stay_types,omitempty"`

	MinPriceCents *int64 `json:"min_price_cents,omitempty"`
	MaxPriceCents *int64 `json:"max_price_cents,omitempty"`

	// Accepted but not forwarded to the engine yet: availability filtering
	// needs booking occupancy data this service does not hold.
	CheckIn  *string `json:"check_in,omitempty"`  // ISO date, e.g. 2024-03-01
	CheckOut *string `json:"check_out,omitempty"` // ISO date

	Guests int `json:"guests,omitempty"`

	AccessibilityFeatures []string `json:"accessibility_features,omitempty"`
	Amenities             []string `json:"amenities,omitempty"`

	Sort string `json:"sort,omitempty"`
}

// ToSpec builds the filter spec. Malformed fields never error: unknown stay
// types simply match nothing, matching the engine's no-error contract.
// CheckIn/CheckOut stay out of the spec until availability filtering lands.
func (r SearchRequest) ToSpec() (catalog.FilterSpec, catalog.SortKey) {
	spec := catalog.FilterSpec{
		Location:              r.Location,
		MinPriceCents:         r.MinPriceCents,
		MaxPriceCents:         r.MaxPriceCents,
		Guests:                r.Guests,
		AccessibilityFeatures: r.AccessibilityFeatures,
		Amenities:             r.Amenities,
	}

	for _, raw := range r.StayTypes {
		spec.StayTypes = append(spec.StayTypes, property.StayType(raw))
	}

	key := catalog.SortKey(r.Sort)
	if !key.IsValid() {
		key = catalog.SortNewest
	}
	return spec, key
}
