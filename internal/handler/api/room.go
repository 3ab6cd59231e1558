package api

import (
	"net/http"

	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List available rooms
// @Description Get all rooms currently open for booking
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomQueries.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}
