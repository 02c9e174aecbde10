//go:build unit

package builder

import (
	"time"

	"carevacay/internal/domain/property"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID                    uuid.UUID
	HostID                uuid.UUID
	Title                 string
	StayType              property.StayType
	City                  string
	State                 string
	Postcode              string
	MaxGuests             int
	Bedrooms              int
	Bathrooms             int
	BasePriceCents        int64
	CleaningFeeCents      int64
	ServiceFeeCents       int64
	MinimumStay           int
	MaximumStay           *int
	AccessibilityFeatures []string
	Amenities             []string
	NDISApproved          bool
	SupportWorkerRequired bool
	SupportWorkerProvided bool
	IsAvailable           bool
	CreatedAt             time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                    uuid.New(),
		HostID:                uuid.New(),
		Title:                 "Accessible Queenslander",
		StayType:              property.StayTypeShortTerm,
		City:                  "Brisbane",
		State:                 "QLD",
		Postcode:              "4000",
		MaxGuests:             4,
		Bedrooms:              2,
		Bathrooms:             1,
		BasePriceCents:        15000,
		CleaningFeeCents:      5000,
		ServiceFeeCents:       0,
		MinimumStay:           1,
		AccessibilityFeatures: []string{"wheelchair_access", "step_free_entry"},
		Amenities:             []string{"wifi", "parking"},
		NDISApproved:          true,
		IsAvailable:           true,
		CreatedAt:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) Build() *property.Property {
	return &property.Property{
		ID:                    b.ID,
		HostID:                b.HostID,
		Title:                 b.Title,
		StayType:              b.StayType,
		City:                  b.City,
		State:                 b.State,
		Postcode:              b.Postcode,
		MaxGuests:             b.MaxGuests,
		Bedrooms:              b.Bedrooms,
		Bathrooms:             b.Bathrooms,
		BasePriceCents:        b.BasePriceCents,
		CleaningFeeCents:      b.CleaningFeeCents,
		ServiceFeeCents:       b.ServiceFeeCents,
		MinimumStay:           b.MinimumStay,
		MaximumStay:           b.MaximumStay,
		AccessibilityFeatures: b.AccessibilityFeatures,
		Amenities:             b.Amenities,
		NDISApproved:          b.NDISApproved,
		SupportWorkerRequired: b.SupportWorkerRequired,
		SupportWorkerProvided: b.SupportWorkerProvided,
		IsAvailable:           b.IsAvailable,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.CreatedAt,
	}
}
