//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roomstay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayPeriod(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		p, err := booking.NewStayPeriod(date(2026, 3, 10), date(2026, 3, 13))
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), p.CheckIn())
		assert.Equal(t, date(2026, 3, 13), p.CheckOut())
		assert.Equal(t, 3, p.Nights())
	})

	t.Run("timestamps are truncated to dates", func(t *testing.T) {
		checkIn := time.Date(2026, 3, 10, 15, 30, 45, 0, time.UTC)
		checkOut := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

		p, err := booking.NewStayPeriod(checkIn, checkOut)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), p.CheckIn())
		assert.Equal(t, date(2026, 3, 12), p.CheckOut())
		assert.Equal(t, 2, p.Nights())
	})

	t.Run("non-UTC timestamps normalize to the UTC date", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		// 08:00 JST on March 11 is 23:00 UTC on March 10
		checkIn := time.Date(2026, 3, 11, 8, 0, 0, 0, tokyo)

		p, err := booking.NewStayPeriod(checkIn, date(2026, 3, 13))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 3, 10), p.CheckIn())
	})

	t.Run("check-out must be after check-in", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
		}{
			{name: "same day", checkIn: date(2026, 3, 10), checkOut: date(2026, 3, 10)},
			{name: "reversed", checkIn: date(2026, 3, 13), checkOut: date(2026, 3, 10)},
			{name: "same day after truncation", checkIn: date(2026, 3, 10), checkOut: time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewStayPeriod(tc.checkIn, tc.checkOut)
				assert.ErrorIs(t, err, booking.ErrInvalidStayPeriod)
			})
		}
	})
}

func TestCancellationPolicy(t *testing.T) {
	policy := booking.NewCancellationPolicy(24 * time.Hour)
	checkIn := date(2026, 3, 10)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "two days of notice",
			now:  date(2026, 3, 8),
			want: true,
		},
		{
			name: "just over one day of notice",
			now:  time.Date(2026, 3, 8, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "exactly one day before check-in",
			now:  date(2026, 3, 9),
			want: false,
		},
		{
			name: "hours before check-in",
			now:  time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "on the check-in date",
			now:  date(2026, 3, 10),
			want: false,
		},
		{
			name: "after check-in",
			now:  date(2026, 3, 11),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.CanCancel(tc.now, checkIn))
		})
	}

	t.Run("check-in time of day does not extend the window", func(t *testing.T) {
		lateCheckIn := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
		// The window closes against midnight of the check-in date.
		assert.False(t, policy.CanCancel(date(2026, 3, 9), lateCheckIn))
	})
}
