package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("property title cannot be empty")
	ErrInvalidStayType  = errors.New("unknown stay type")
	ErrInvalidCapacity  = errors.New("property must accommodate at least one guest")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidStayRange = errors.New("minimum stay must be positive and not exceed maximum stay")
)

const MaxTitleLength = 255

// Property is an immutable catalog entry. It is produced by the host
// onboarding flow and read-only to this core, so it is modeled as a plain
// record rather than an aggregate with mutators.
type Property struct {
	ID          uuid.UUID
	HostID      uuid.UUID
	Title       string
	Description string
	StayType    StayType

	City     string
	State    string
	Postcode string

	MaxGuests int
	Bedrooms  int
	Bathrooms int

	// Prices are in cents per the platform-wide money convention.
	BasePriceCents   int64
	CleaningFeeCents int64
	ServiceFeeCents  int64

	MinimumStay int  // nights
	MaximumStay *int // nights, nil = no limit

	AccessibilityFeatures []string
	Amenities             []string

	NDISApproved          bool
	SupportWorkerRequired bool
	SupportWorkerProvided bool

	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the structural invariants a catalog entry must satisfy
// before the engine will accept it.
func (p *Property) Validate() error {
	title := strings.TrimSpace(p.Title)
	if title == "" || len(title) > MaxTitleLength {
		return ErrEmptyTitle
	}
	if !p.StayType.IsValid() {
		return ErrInvalidStayType
	}
	if p.MaxGuests < 1 {
		return ErrInvalidCapacity
	}
	if p.BasePriceCents < 0 || p.CleaningFeeCents < 0 || p.ServiceFeeCents < 0 {
		return ErrNegativePrice
	}
	if p.MinimumStay < 1 {
		return ErrInvalidStayRange
	}
	if p.MaximumStay != nil && *p.MaximumStay < p.MinimumStay {
		return ErrInvalidStayRange
	}
	return nil
}

// HasFeatures reports whether every requested accessibility feature is offered.
func (p *Property) HasFeatures(required []string) bool {
	return containsAll(p.AccessibilityFeatures, required)
}

// HasAmenities reports whether every requested amenity is offered.
func (p *Property) HasAmenities(required []string) bool {
	return containsAll(p.Amenities, required)
}

// SupportWorkerActionRequired reports whether a booking against this property
// needs the participant to arrange their own support worker.
func (p *Property) SupportWorkerActionRequired() bool {
	return p.SupportWorkerRequired && !p.SupportWorkerProvided
}

func containsAll(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(have))
	for _, h := range have {
		set[strings.ToLower(strings.TrimSpace(h))] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[strings.ToLower(strings.TrimSpace(w))]; !ok {
			return false
		}
	}
	return true
}
