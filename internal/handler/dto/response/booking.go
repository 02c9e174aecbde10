package response

import (
	"carevacay/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	PropertyID       uuid.UUID `json:"propertyId"`
	Nights           int       `json:"nights"`
	SubtotalCents    int64     `json:"subtotalCents"`
	CleaningFeeCents int64     `json:"cleaningFeeCents"`
	ServiceFeeCents  int64     `json:"serviceFeeCents"`
	TotalCents       int64     `json:"totalCents"`

	SupportWorkerActionRequired bool `json:"supportWorkerActionRequired"`
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		PropertyID:                  rm.PropertyID,
		Nights:                      rm.Nights,
		SubtotalCents:               rm.SubtotalCents,
		CleaningFeeCents:            rm.CleaningFeeCents,
		ServiceFeeCents:             rm.ServiceFeeCents,
		TotalCents:                  rm.TotalCents,
		SupportWorkerActionRequired: rm.SupportWorkerActionRequired,
	}
}
