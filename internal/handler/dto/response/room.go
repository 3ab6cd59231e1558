package response

import (
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"roomNumber"`
	RoomType      string   `json:"roomType"`
	PricePerNight int32    `json:"price"`
	Description   string   `json:"description"`
	BedsCount     int32    `json:"bedsCount"`
	MaxOccupancy  int32    `json:"maxOccupancy"`
	SizeSqm       int32    `json:"size"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   bool     `json:"isAvailable"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	resp := &RoomResponse{}
	_ = copier.Copy(resp, rm)
	resp.ID = rm.ID.String()
	return resp
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRoomView(rm)
	}
	return result
}
