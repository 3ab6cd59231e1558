package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"
)

// BookingResponse deliberately omits the booking id and the room/user
// references; callers only ever see what they supplied plus the admitted
// room's number, type and price.
type BookingResponse struct {
	CheckInDate     time.Time `json:"checkInDate"`
	CheckOutDate    time.Time `json:"checkOutDate"`
	GuestCount      int32     `json:"guestCount"`
	RoomNumber      string    `json:"roomNumber"`
	RoomType        string    `json:"roomType"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	TotalPrice      int32     `json:"totalPrice"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		CheckInDate:     rm.CheckInDate,
		CheckOutDate:    rm.CheckOutDate,
		GuestCount:      rm.GuestCount,
		RoomNumber:      rm.RoomNumber,
		RoomType:        rm.RoomType,
		SpecialRequests: rm.SpecialRequests,
		Status:          rm.Status,
		TotalPrice:      rm.TotalPrice,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingView(rm)
	}
	return result
}
