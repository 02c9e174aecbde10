package booking

import (
	"time"
)

// StayRange is a half-open [check-in, check-out) date pair. Dates are
// truncated to midnight UTC so that nights are always whole days.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidDateRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Nights is the whole-day span of the stay, always >= 1.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}
