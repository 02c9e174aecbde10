package booking

import (
	"carevacay/internal/domain/property"
)

// PriceQuote is the pure output of the calculator. It carries no identity
// and is never persisted; turning it into a booking record is the caller's
// concern.
type PriceQuote struct {
	nights      int
	subtotal    Money
	cleaningFee Money
	serviceFee  Money
	total       Money

	supportWorkerActionRequired bool
}

func (q *PriceQuote) Nights() int        { return q.nights }
func (q *PriceQuote) Subtotal() Money    { return q.subtotal }
func (q *PriceQuote) CleaningFee() Money { return q.cleaningFee }
func (q *PriceQuote) ServiceFee() Money  { return q.serviceFee }
func (q *PriceQuote) Total() Money       { return q.total }

// SupportWorkerActionRequired is advisory only; it never blocks a quote.
func (q *PriceQuote) SupportWorkerActionRequired() bool {
	return q.supportWorkerActionRequired
}

// Calculator validates a booking request against a property's constraints
// and produces a deterministic price breakdown. It holds no state and
// performs no I/O.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Quote(prop *property.Property, req Request) (*PriceQuote, error) {
	stay, err := NewStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	nights := stay.Nights()
	if nights < prop.MinimumStay {
		return nil, ErrStayTooShort
	}
	if prop.MaximumStay != nil && nights > *prop.MaximumStay {
		return nil, ErrStayTooLong
	}
	if req.Guests < 1 || req.Guests > prop.MaxGuests {
		return nil, ErrGuestCountExceeded
	}

	base := NewMoney(prop.BasePriceCents)
	if base.IsNegative() {
		return nil, ErrNegativePrice
	}

	subtotal := base.MultiplyNights(nights)
	cleaning := NewMoney(prop.CleaningFeeCents)
	service := NewMoney(prop.ServiceFeeCents)

	return &PriceQuote{
		nights:                      nights,
		subtotal:                    subtotal,
		cleaningFee:                 cleaning,
		serviceFee:                  service,
		total:                       subtotal.Add(cleaning).Add(service),
		supportWorkerActionRequired: prop.SupportWorkerActionRequired(),
	}, nil
}
