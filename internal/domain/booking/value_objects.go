package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrCheckInInPast           = errors.New("check-in date cannot be in the past")
)

// StayPeriod is a half-open date interval [checkIn, checkOut). Time of day is
// discarded: both endpoints are normalized to midnight UTC, so a checkout on
// the same day another guest checks in does not overlap.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	if !out.After(in) {
		return StayPeriod{}, ErrCheckOutNotAfterCheckIn
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ValidateNotPast rejects stays starting before today, date-only comparison.
func (s StayPeriod) ValidateNotPast(now time.Time) error {
	if s.checkIn.Before(DateOnly(now)) {
		return ErrCheckInInPast
	}
	return nil
}

func (s StayPeriod) CheckIn() time.Time {
	return s.checkIn
}

func (s StayPeriod) CheckOut() time.Time {
	return s.checkOut
}

// Nights rounds any fractional day up; with normalized endpoints the count is
// always a whole number and at least 1.
func (s StayPeriod) Nights() int32 {
	hours := s.checkOut.Sub(s.checkIn).Hours()
	nights := int32(hours / 24)
	if float64(nights)*24 < hours {
		nights++
	}
	return nights
}

// Overlaps implements half-open interval intersection:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func (s StayPeriod) Overlaps(other StayPeriod) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: strings.TrimSpace(value)}
}

func (r SpecialRequests) String() string {
	return r.value
}

func (r SpecialRequests) IsEmpty() bool {
	return r.value == ""
}
