package api

import (
	"errors"
	"fmt"
	"net/http"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/middleware"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book the first free room of the requested type over the stay dates
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	bookingRM, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		h.respondBookingError(c, req, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(bookingRM))
}

func (h *BookingHandler) respondBookingError(c *gin.Context, req reqdto.CreateBookingRequest, err error) {
	var guestCountErr *commands.GuestCountOutOfRangeError

	switch {
	case errors.Is(err, booking.ErrCheckInInPast):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-in date cannot be in the past",
		})
	case errors.Is(err, booking.ErrCheckOutNotAfterCheckIn):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out date must be after check-in date",
		})
	case errors.Is(err, reqdto.ErrInvalidDateFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
	case errors.Is(err, room.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room type",
		})
	case errors.As(err, &guestCountErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Guest count must be between 1 and %d", guestCountErr.MaxOccupancy),
		})
	case errors.Is(err, commands.ErrNoRoomsAvailable):
		// Same message whether the type has no inventory or is fully booked
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("No available rooms of type %s for the selected dates", req.RoomType),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get user bookings
// @Description Get all bookings of one user, most recent first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{id}/bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID format",
		})
		return
	}

	// Callers only ever see their own bookings
	if requestedID != callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Forbidden",
		})
		return
	}

	bookingsRM, err := h.bookingQueries.ListByUser(c.Request.Context(), callerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(bookingsRM))
}
