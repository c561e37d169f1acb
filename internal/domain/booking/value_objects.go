package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod  = errors.New("check-out must be after check-in")
	ErrCheckInInPast      = errors.New("check-in date is in the past")
	ErrCancellationClosed = errors.New("cancellation window has closed")
)

// StayPeriod is the half-open [checkIn, checkOut) date range of a booking.
// Dates are normalized to midnight UTC.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	ci := truncateToDate(checkIn)
	co := truncateToDate(checkOut)
	if !co.After(ci) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: ci, checkOut: co}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CancellationPolicy closes the cancellation window a fixed lead time before
// check-in: cancelling is allowed only while now + lead is still before the
// check-in date. With the default 24h lead this means strictly more than one
// calendar day of notice.
type CancellationPolicy struct {
	lead time.Duration
}

func NewCancellationPolicy(lead time.Duration) CancellationPolicy {
	return CancellationPolicy{lead: lead}
}

func (p CancellationPolicy) CanCancel(now, checkIn time.Time) bool {
	return now.Add(p.lead).Before(truncateToDate(checkIn))
}
