package request

import (
	"errors"
	"time"

	"carevacay/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrBadDateFormat = errors.New("dates must be ISO formatted (YYYY-MM-DD)")

type QuoteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	// No "required" binding: zero is a meaningful value the pricing rules
	// reject with a coded error, not a binding failure.
	Guests int `json:"guests"`
}

func (r QuoteRequest) ToDomain() (booking.Request, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return booking.Request{}, ErrBadDateFormat
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return booking.Request{}, ErrBadDateFormat
	}
	return booking.Request{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
	}, nil
}
