package request

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
)

var ErrInvalidDateFormat = errors.New("invalid date format")

type CreateBookingRequest struct {
	RoomType        string  `json:"roomType" binding:"required"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	GuestCount      int32   `json:"guestCount" binding:"required"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

type BookingDomainData struct {
	RoomType        room.Type
	Stay            booking.StayPeriod
	SpecialRequests booking.SpecialRequests
}

func (r CreateBookingRequest) ToDomain() (*BookingDomainData, error) {
	roomType, err := room.NewType(r.RoomType)
	if err != nil {
		return nil, err
	}

	checkIn, err := parseDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	stay, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	requests := booking.NewSpecialRequests("")
	if r.SpecialRequests != nil {
		requests = booking.NewSpecialRequests(*r.SpecialRequests)
	}

	return &BookingDomainData{
		RoomType:        roomType,
		Stay:            stay,
		SpecialRequests: requests,
	}, nil
}

// Dates arrive as plain calendar dates or as full RFC 3339 timestamps;
// either way only the date part matters.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateFormat
}
