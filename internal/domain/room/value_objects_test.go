//go:build unit

package room_test

import (
	"testing"

	"roomstay/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancy(t *testing.T) {
	t.Run("zero value is free", func(t *testing.T) {
		var o room.Occupancy
		assert.True(t, o.IsFree())
		assert.Equal(t, room.StatusAvailable, o.Status())

		_, held := o.BookingID()
		assert.False(t, held)
	})

	t.Run("occupied slot reports its booking", func(t *testing.T) {
		bookingID := uuid.New()
		o := room.OccupiedBy(bookingID)

		assert.False(t, o.IsFree())
		assert.Equal(t, room.StatusUnavailable, o.Status())

		got, held := o.BookingID()
		assert.True(t, held)
		assert.Equal(t, bookingID, got)
	})

	t.Run("nil booking ref maps to free", func(t *testing.T) {
		o := room.FromBookingRef(nil)
		assert.True(t, o.IsFree())
		assert.Equal(t, room.StatusAvailable, o.Status())
	})

	t.Run("non-nil booking ref maps to occupied", func(t *testing.T) {
		bookingID := uuid.New()
		o := room.FromBookingRef(&bookingID)

		assert.False(t, o.IsFree())
		got, held := o.BookingID()
		assert.True(t, held)
		assert.Equal(t, bookingID, got)
	})

	t.Run("booking ref is copied, not aliased", func(t *testing.T) {
		original := uuid.New()
		ref := original
		o := room.FromBookingRef(&ref)

		ref = uuid.New()

		got, _ := o.BookingID()
		assert.Equal(t, original, got)
	})
}

func TestAggregateRating(t *testing.T) {
	t.Run("first score becomes the average", func(t *testing.T) {
		next, err := room.NewAggregateRating(0, 0).Add(5)
		require.NoError(t, err)

		assert.Equal(t, 5.0, next.Average())
		assert.Equal(t, int32(1), next.Count())
	})

	t.Run("new score folds into the running mean", func(t *testing.T) {
		// 2 reviews averaging 4.0, plus a 5: (4*2+5)/3 = 4.333... -> 4.33
		next, err := room.NewAggregateRating(4.0, 2).Add(5)
		require.NoError(t, err)

		assert.Equal(t, 4.33, next.Average())
		assert.Equal(t, int32(3), next.Count())
	})

	t.Run("mean rounds to two decimals", func(t *testing.T) {
		cases := []struct {
			name    string
			average float64
			count   int32
			score   int
			want    float64
		}{
			{name: "half stays exact", average: 1.0, count: 1, score: 2, want: 1.5},
			{name: "repeating third rounds down", average: 1.0, count: 2, score: 5, want: 2.33},
			{name: "repeating two-thirds rounds up", average: 2.0, count: 2, score: 5, want: 3.0},
			{name: "all fives stay five", average: 5.0, count: 99, score: 5, want: 5.0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				next, err := room.NewAggregateRating(tc.average, tc.count).Add(tc.score)
				require.NoError(t, err)
				assert.Equal(t, tc.want, next.Average())
				assert.Equal(t, tc.count+1, next.Count())
			})
		}
	})

	t.Run("score bounds", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			_, err := room.NewAggregateRating(3.0, 1).Add(score)
			assert.ErrorIs(t, err, room.ErrInvalidScore, "score %d should be rejected", score)
		}
	})

	t.Run("sequential adds accumulate", func(t *testing.T) {
		rating := room.NewAggregateRating(0, 0)
		for _, score := range []int{5, 3, 4} {
			var err error
			rating, err = rating.Add(score)
			require.NoError(t, err)
		}

		assert.Equal(t, 4.0, rating.Average())
		assert.Equal(t, int32(3), rating.Count())
	})
}
