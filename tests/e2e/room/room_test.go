//go:build e2e

package room_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/tests/common/dbtest"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type RoomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

func (s *RoomSuite) TestListRooms() {
	s.Run("Normal case: lists the seeded inventory without auth", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")

		var rooms []response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)
		require.Len(t, rooms, 10)

		byType := map[string]int{}
		for _, r := range rooms {
			byType[r.RoomType]++
			require.NotEmpty(t, r.ID)
			require.NotEmpty(t, r.RoomNumber)
			require.True(t, r.IsAvailable)
		}
		require.Equal(t, 4, byType["standard"])
		require.Equal(t, 4, byType["deluxe"])
		require.Equal(t, 2, byType["suite"])
	})

	s.Run("Normal case: unavailable rooms are filtered out", func() {
		t := s.T()

		_, err := s.DB.Exec(t.Context(), "UPDATE rooms SET is_available = false WHERE room_number = '101'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")

		var rooms []response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rooms)
		require.Len(t, rooms, 9)
		for _, r := range rooms {
			require.NotEqual(t, "101", r.RoomNumber)
		}
	})

	s.Run("Normal case: listing twice is stable", func() {
		t := s.T()
		dbtest.ClearRooms(t, s.DB)
		dbtest.CreateTestRoom(t, s.DB, "901", "standard", 100, 2)

		first := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		second := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, first.Body.String(), second.Body.String())
	})
}
