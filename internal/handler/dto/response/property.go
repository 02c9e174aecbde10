package response

import (
	"time"

	"carevacay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	HostID      uuid.UUID `json:"hostId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StayType    string    `json:"stayType"`

	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`

	MaxGuests int `json:"maxGuests"`
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`

	BasePriceCents   int64 `json:"basePriceCents"`
	CleaningFeeCents int64 `json:"cleaningFeeCents"`
	ServiceFeeCents  int64 `json:"serviceFeeCents"`

	MinimumStay int  `json:"minimumStay"`
	MaximumStay *int `json:"maximumStay,omitempty"`

	AccessibilityFeatures []string `json:"accessibilityFeatures"`
	Amenities             []string `json:"amenities"`

	NDISApproved          bool `json:"ndisApproved"`
	SupportWorkerRequired bool `json:"supportWorkerRequired"`
	SupportWorkerProvided bool `json:"supportWorkerProvided"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SearchResponse struct {
	Properties []*PropertyResponse `json:"properties"`
	Total      int                 `json:"total"`
}

func FromPropertyView(rm *queries.PropertyView) *PropertyResponse {
	resp := &PropertyResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromSearchResult(rm *queries.SearchResult) *SearchResponse {
	properties := make([]*PropertyResponse, len(rm.Properties))
	for i, p := range rm.Properties {
		properties[i] = FromPropertyView(p)
	}
	return &SearchResponse{
		Properties: properties,
		Total:      rm.Total,
	}
}
