package memstore

import (
	"context"
	"time"

	"carevacay/internal/domain/property"
	"carevacay/internal/usecase/shared"

	"github.com/google/uuid"
)

// SeedDemoData loads the built-in demo catalog and directory. Production
// deployments replace this with feeds from host management and identity.
func SeedDemoData(ctx context.Context, properties *PropertyStore, directory *UserDirectory) error {
	hostSarah := &shared.UserSnapshot{
		ID:        uuid.MustParse("5b91f0cf-44a7-4af1-9a93-0c6db0f1f112"),
		FirstName: "Sarah",
		LastName:  "Johnson",
		Email:     "sarah@carevacay.com.au",
		Role:      "host",
	}
	hostMike := &shared.UserSnapshot{
		ID:        uuid.MustParse("8f2e7a64-2f2b-4f43-9a1d-63f1a27c9c41"),
		FirstName: "Mike",
		LastName:  "Chen",
		Email:     "mike@carevacay.com.au",
		Role:      "host",
	}
	directory.Put(ctx, hostSarah)
	directory.Put(ctx, hostMike)

	maxStay := 28
	listings := []*property.Property{
		{
			ID:                    uuid.MustParse("0d8f7c2a-96a1-4a9b-bb56-1d2b77a3f001"),
			HostID:                hostSarah.ID,
			Title:                 "Accessible apartment in South Brisbane",
			Description:           "Ground floor two-bedroom apartment with step-free access throughout.",
			StayType:              property.StayTypeShortTerm,
			City:                  "Brisbane",
			State:                 "QLD",
			Postcode:              "4101",
			MaxGuests:             4,
			Bedrooms:              2,
			Bathrooms:             1,
			BasePriceCents:        18500,
			CleaningFeeCents:      8000,
			ServiceFeeCents:       2500,
			MinimumStay:           2,
			MaximumStay:           &maxStay,
			AccessibilityFeatures: []string{"wheelchair accessible", "roll-in shower", "wide doorways"},
			Amenities:             []string{"wifi", "air conditioning", "parking"},
			NDISApproved:          true,
			SupportWorkerRequired: false,
			SupportWorkerProvided: false,
			IsAvailable:           true,
			CreatedAt:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:             time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                    uuid.MustParse("0d8f7c2a-96a1-4a9b-bb56-1d2b77a3f002"),
			HostID:                hostMike.ID,
			Title:                 "SIL house near Maroochydore beach",
			Description:           "Purpose-built supported independent living home for two residents.",
			StayType:              property.StayTypeSupported,
			City:                  "Sunshine Coast",
			State:                 "QLD",
			Postcode:              "4558",
			MaxGuests:             2,
			Bedrooms:              2,
			Bathrooms:             2,
			BasePriceCents:        24000,
			CleaningFeeCents:      0,
			ServiceFeeCents:       3000,
			MinimumStay:           7,
			AccessibilityFeatures: []string{"wheelchair accessible", "ceiling hoist", "emergency call system"},
			Amenities:             []string{"wifi", "garden", "parking"},
			NDISApproved:          true,
			SupportWorkerRequired: true,
			SupportWorkerProvided: true,
			IsAvailable:           true,
			CreatedAt:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                    uuid.MustParse("0d8f7c2a-96a1-4a9b-bb56-1d2b77a3f003"),
			HostID:                hostSarah.ID,
			Title:                 "Respite villa with sensory garden",
			Description:           "Quiet single-level villa set up for short respite stays.",
			StayType:              property.StayTypeRespite,
			City:                  "Brisbane",
			State:                 "QLD",
			Postcode:              "4064",
			MaxGuests:             3,
			Bedrooms:              3,
			Bathrooms:             2,
			BasePriceCents:        15500,
			CleaningFeeCents:      6500,
			ServiceFeeCents:       2000,
			MinimumStay:           1,
			AccessibilityFeatures: []string{"step-free access", "grab rails"},
			Amenities:             []string{"wifi", "garden", "pets allowed"},
			NDISApproved:          true,
			SupportWorkerRequired: true,
			SupportWorkerProvided: false,
			IsAvailable:           true,
			CreatedAt:             time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:             time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, p := range listings {
		if err := properties.Put(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
