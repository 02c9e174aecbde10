package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type PropertyView struct {
	ID          uuid.UUID `json:"id"`
	HostID      uuid.UUID `json:"host_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StayType    string    `json:"stay_type"`

	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`

	MaxGuests int `json:"max_guests"`
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`

	BasePriceCents   int64 `json:"base_price_cents"`
	CleaningFeeCents int64 `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64 `json:"service_fee_cents"`

	MinimumStay int  `json:"minimum_stay"`
	MaximumStay *int `json:"maximum_stay,omitempty"`

	AccessibilityFeatures []string `json:"accessibility_features"`
	Amenities             []string `json:"amenities"`

	NDISApproved          bool `json:"ndis_approved"`
	SupportWorkerRequired bool `json:"support_worker_required"`
	SupportWorkerProvided bool `json:"support_worker_provided"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SearchResult carries the ordered page plus the count UIs show as
// "N properties found".
type SearchResult struct {
	Properties []*PropertyView `json:"properties"`
	Total      int             `json:"total"`
}

type QuoteView struct {
	PropertyID       uuid.UUID `json:"property_id"`
	Nights           int       `json:"nights"`
	SubtotalCents    int64     `json:"subtotal_cents"`
	CleaningFeeCents int64     `json:"cleaning_fee_cents"`
	ServiceFeeCents  int64     `json:"service_fee_cents"`
	TotalCents       int64     `json:"total_cents"`

	SupportWorkerActionRequired bool `json:"support_worker_action_required"`
}

type ParticipantView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

type MessageView struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	SentAt      time.Time  `json:"sent_at"`
}

type ConversationView struct {
	ID           uuid.UUID         `json:"id"`
	Participants []ParticipantView `json:"participants"`
	BookingID    *uuid.UUID        `json:"booking_id,omitempty"`
	LastMessage  *MessageView      `json:"last_message,omitempty"`
	UnreadCount  int               `json:"unread_count"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
