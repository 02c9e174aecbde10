package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrStayTooShort       = errors.New("stay is shorter than the property minimum stay")
	ErrStayTooLong        = errors.New("stay exceeds the property maximum stay")
	ErrGuestCountExceeded = errors.New("guest count is outside property capacity")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// Request is the caller-supplied booking intent. The property it references
// is resolved by the caller; this package only sees the resolved record.
type Request struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}
