//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"carevacay/internal/domain/booking"
	"carevacay/internal/domain/property"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/queries"
	"carevacay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRequest(propertyID uuid.UUID, nights, guests int) booking.Request {
	checkIn := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	return booking.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, nights),
		Guests:     guests,
	}
}

func TestBookingQueriesQuote(t *testing.T) {
	ctx := context.Background()

	prop := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.BasePriceCents = 10000
		b.CleaningFeeCents = 5000
		b.MinimumStay = 2
		b.MaxGuests = 4
	}).Build()
	store := &countingStore{listings: []*property.Property{prop}}
	q := queries.NewBookingQueries(store, booking.NewCalculator())

	t.Run("resolves the property and prices the stay", func(t *testing.T) {
		view, err := q.Quote(ctx, quoteRequest(prop.ID, 3, 2))
		require.NoError(t, err)

		assert.Equal(t, prop.ID, view.PropertyID)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(35000), view.TotalCents)
	})

	t.Run("unknown property maps to the sentinel", func(t *testing.T) {
		_, err := q.Quote(ctx, quoteRequest(uuid.New(), 3, 2))
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})

	t.Run("calculator errors carry the shared sentinels", func(t *testing.T) {
		cases := []struct {
			name   string
			nights int
			guests int
			errIs  error
		}{
			{name: "too short", nights: 1, guests: 2, errIs: errs.ErrStayTooShort},
			{name: "guest count", nights: 3, guests: 9, errIs: errs.ErrGuestCountExceeded},
			{name: "inverted range", nights: -1, guests: 2, errIs: errs.ErrInvalidDateRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := q.Quote(ctx, quoteRequest(prop.ID, tc.nights, tc.guests))
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
