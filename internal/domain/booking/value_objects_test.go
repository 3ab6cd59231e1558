//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		stay, err := booking.NewStayPeriod(date(2024, 6, 1), date(2024, 6, 5))
		require.NoError(t, err)

		assert.Equal(t, date(2024, 6, 1), stay.CheckIn())
		assert.Equal(t, date(2024, 6, 5), stay.CheckOut())
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		checkIn := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
		checkOut := time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)

		stay, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)

		assert.Equal(t, date(2024, 6, 1), stay.CheckIn())
		assert.Equal(t, date(2024, 6, 5), stay.CheckOut())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2024, 6, 5), date(2024, 6, 5))
		require.ErrorIs(t, err, booking.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		_, err := booking.NewStayPeriod(date(2024, 6, 5), date(2024, 6, 1))
		require.ErrorIs(t, err, booking.ErrCheckOutNotAfterCheckIn)
	})

	t.Run("same calendar day in different time zones is rejected", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)
		checkIn := time.Date(2024, 6, 5, 23, 0, 0, 0, time.UTC)
		checkOut := time.Date(2024, 6, 6, 8, 0, 0, 0, loc) // still June 5 in UTC

		_, err := booking.NewStayPeriod(checkIn, checkOut)
		require.ErrorIs(t, err, booking.ErrCheckOutNotAfterCheckIn)
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        booking.StayPeriod
		b        booking.StayPeriod
		overlaps bool
	}{
		{
			name:     "touching intervals do not overlap",
			a:        mustStay(t, date(2024, 6, 1), date(2024, 6, 5)),
			b:        mustStay(t, date(2024, 6, 5), date(2024, 6, 8)),
			overlaps: false,
		},
		{
			name:     "interval straddling the boundary overlaps",
			a:        mustStay(t, date(2024, 6, 1), date(2024, 6, 5)),
			b:        mustStay(t, date(2024, 6, 4), date(2024, 6, 6)),
			overlaps: true,
		},
		{
			name:     "contained interval overlaps",
			a:        mustStay(t, date(2024, 6, 1), date(2024, 6, 10)),
			b:        mustStay(t, date(2024, 6, 3), date(2024, 6, 5)),
			overlaps: true,
		},
		{
			name:     "identical intervals overlap",
			a:        mustStay(t, date(2024, 6, 1), date(2024, 6, 5)),
			b:        mustStay(t, date(2024, 6, 1), date(2024, 6, 5)),
			overlaps: true,
		},
		{
			name:     "disjoint intervals do not overlap",
			a:        mustStay(t, date(2024, 6, 1), date(2024, 6, 3)),
			b:        mustStay(t, date(2024, 6, 10), date(2024, 6, 12)),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestStayPeriodNights(t *testing.T) {
	tests := []struct {
		name   string
		stay   booking.StayPeriod
		nights int32
	}{
		{"single night", mustStay(t, date(2024, 6, 1), date(2024, 6, 2)), 1},
		{"three nights", mustStay(t, date(2024, 6, 1), date(2024, 6, 4)), 3},
		{"month boundary", mustStay(t, date(2024, 6, 30), date(2024, 7, 2)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nights, tt.stay.Nights())
		})
	}
}

func TestStayPeriodValidateNotPast(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)

	t.Run("future check-in passes", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 10), date(2024, 6, 12))
		require.NoError(t, stay.ValidateNotPast(now))
	})

	t.Run("check-in today passes regardless of time of day", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 5), date(2024, 6, 7))
		require.NoError(t, stay.ValidateNotPast(now))
	})

	t.Run("check-in yesterday is rejected", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 4), date(2024, 6, 7))
		require.ErrorIs(t, stay.ValidateNotPast(now), booking.ErrCheckInInPast)
	})
}

func TestSpecialRequests(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		r := booking.NewSpecialRequests("  late check-in please  ")
		assert.Equal(t, "late check-in please", r.String())
		assert.False(t, r.IsEmpty())
	})

	t.Run("whitespace only is empty", func(t *testing.T) {
		r := booking.NewSpecialRequests("   ")
		assert.True(t, r.IsEmpty())
	})
}
