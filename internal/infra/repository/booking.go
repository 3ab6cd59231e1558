package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/repository/converter"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	CountOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

// Create inserts the booking. The bookings table carries an exclusion
// constraint on (room_id, daterange(check_in, check_out)) for non-cancelled
// rows, so a lost race surfaces here as KindConflict rather than as a
// persisted double-booking.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToInfra(b)

	resultID, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}

// HasOverlap reports whether any non-cancelled booking of the given room
// intersects the half-open stay interval.
func (r *BookingRepository) HasOverlap(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	count, err := r.queries.CountOverlappingBookings(ctx, tx, sqlc.CountOverlappingBookingsParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut: pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}

	return count > 0, nil
}
