package queries

import (
	"context"
	"errors"

	"carevacay/internal/domain/booking"
	"carevacay/internal/infra"
	"carevacay/internal/pkg/errs"
)

// BookingQueries produces price quotes. Quoting is a pure read: nothing is
// reserved and no booking identity is assigned here.
type BookingQueries interface {
	Quote(ctx context.Context, req booking.Request) (*QuoteView, error)
}

type bookingQueriesImpl struct {
	store      PropertyReadStore
	calculator *booking.Calculator
}

func NewBookingQueries(store PropertyReadStore, calculator *booking.Calculator) BookingQueries {
	return &bookingQueriesImpl{
		store:      store,
		calculator: calculator,
	}
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, req booking.Request) (*QuoteView, error) {
	prop, err := q.store.FindByID(ctx, req.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	quote, err := q.calculator.Quote(prop, req)
	if err != nil {
		return nil, markQuoteError(err)
	}

	return &QuoteView{
		PropertyID:                  prop.ID,
		Nights:                      quote.Nights(),
		SubtotalCents:               quote.Subtotal().Cents(),
		CleaningFeeCents:            quote.CleaningFee().Cents(),
		ServiceFeeCents:             quote.ServiceFee().Cents(),
		TotalCents:                  quote.Total().Cents(),
		SupportWorkerActionRequired: quote.SupportWorkerActionRequired(),
	}, nil
}

// markQuoteError lifts calculator errors to the shared sentinels handlers
// switch on, keeping the original cause attached.
func markQuoteError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidDateRange):
		return errs.Mark(err, errs.ErrInvalidDateRange)
	case errors.Is(err, booking.ErrStayTooShort):
		return errs.Mark(err, errs.ErrStayTooShort)
	case errors.Is(err, booking.ErrStayTooLong):
		return errs.Mark(err, errs.ErrStayTooLong)
	case errors.Is(err, booking.ErrGuestCountExceeded):
		return errs.Mark(err, errs.ErrGuestCountExceeded)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
