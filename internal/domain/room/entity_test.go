//go:build unit

package room_test

import (
	"testing"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "101", actual.Number())
		assert.Equal(t, room.TypeStandard, actual.RoomType())
		assert.Equal(t, int32(100), actual.PricePerNight())
		assert.True(t, actual.IsAvailable())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty room number",
				mutate: func(b *builder.RoomBuilder) { b.WithNumber("") },
				errIs:  room.ErrEmptyRoomNumber,
			},
			{
				name:   "whitespace only room number",
				mutate: func(b *builder.RoomBuilder) { b.WithNumber("   ") },
				errIs:  room.ErrEmptyRoomNumber,
			},
			{
				name:   "room number too long",
				mutate: func(b *builder.RoomBuilder) { b.WithNumber("12345678901234567") },
				errIs:  room.ErrRoomNumberTooLong,
			},
			{
				name:   "unknown room type",
				mutate: func(b *builder.RoomBuilder) { b.WithType("penthouse") },
				errIs:  room.ErrInvalidType,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.RoomBuilder) { b.WithPrice(-1) },
				errIs:  room.ErrNegativePrice,
			},
			{
				name:   "free room is allowed",
				mutate: func(b *builder.RoomBuilder) { b.WithPrice(0) },
			},
			{
				name:   "zero max occupancy",
				mutate: func(b *builder.RoomBuilder) { b.WithMaxOccupancy(0) },
				errIs:  room.ErrInvalidMaxOccupancy,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.RoomBuilder) { b.Description = "" },
				errIs:  room.ErrEmptyDescription,
			},
			{
				name:   "zero beds",
				mutate: func(b *builder.RoomBuilder) { b.BedsCount = 0 },
				errIs:  room.ErrInvalidBedsCount,
			},
			{
				name:   "zero size",
				mutate: func(b *builder.RoomBuilder) { b.SizeSqm = 0 },
				errIs:  room.ErrInvalidSize,
			},
		})
	})

	t.Run("type parsing is case insensitive", func(t *testing.T) {
		parsed, err := room.NewType("  Deluxe ")
		require.NoError(t, err)
		assert.Equal(t, room.TypeDeluxe, parsed)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
