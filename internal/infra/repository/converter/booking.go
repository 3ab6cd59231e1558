package converter

import (
	"hotel-booking-api/internal/domain/booking"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	var requests pgtype.Text
	if !b.SpecialRequests().IsEmpty() {
		requests = pgconv.StringToPgtype(b.SpecialRequests().String())
	}

	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		UserID:          b.UserID(),
		RoomType:        b.RoomType().String(),
		RoomNumber:      b.RoomNumber(),
		CheckIn:         pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:        pgconv.DateToPgtype(b.Stay().CheckOut()),
		GuestCount:      b.GuestCount(),
		SpecialRequests: requests,
		Status:          b.Status().String(),
		TotalPrice:      b.TotalPrice(),
	}
}
