//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	UserID          uuid.UUID
	RoomType        string
	RoomNumber      string
	CheckIn         time.Time
	CheckOut        time.Time
	GuestCount      int32
	SpecialRequests *string
	Status          string
	TotalPrice      int32
}

// Defaults to a three-night stay far enough in the future that date
// validation never trips during a slow test run.
func NewBookingBuilder() *BookingBuilder {
	checkIn := booking.DateOnly(time.Now().AddDate(0, 1, 0))
	return &BookingBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		UserID:     uuid.New(),
		RoomType:   "standard",
		RoomNumber: "101",
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		GuestCount: 2,
		Status:     "confirmed",
		TotalPrice: 300,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomType:        b.RoomType,
		CheckInDate:     b.CheckIn.Format(time.DateOnly),
		CheckOutDate:    b.CheckOut.Format(time.DateOnly),
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildStay() (booking.StayPeriod, error) {
	return booking.NewStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	roomType, err := room.NewType(b.RoomType)
	if err != nil {
		return nil, err
	}
	spec := booking.RoomSpec{
		ID:            b.RoomID,
		Number:        b.RoomNumber,
		Type:          roomType,
		PricePerNight: 100,
		MaxOccupancy:  4,
	}
	requests := booking.SpecialRequests{}
	if b.SpecialRequests != nil {
		requests = booking.NewSpecialRequests(*b.SpecialRequests)
	}
	services := &booking.Services{Clock: clock.NewMockClock(time.Now().UTC())}
	return booking.NewBooking(services, spec, b.UserID, stay, b.GuestCount, requests)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              b.ID,
		RoomID:          b.RoomID,
		UserID:          b.UserID,
		RoomType:        b.RoomType,
		RoomNumber:      b.RoomNumber,
		CheckInDate:     b.CheckIn,
		CheckOutDate:    b.CheckOut,
		GuestCount:      b.GuestCount,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	now := time.Now()
	return sqlc.Bookings{
		ID:              b.ID,
		RoomID:          b.RoomID,
		UserID:          b.UserID,
		RoomType:        b.RoomType,
		RoomNumber:      b.RoomNumber,
		CheckIn:         pgtype.Date{Time: b.CheckIn, Valid: true},
		CheckOut:        pgtype.Date{Time: b.CheckOut, Valid: true},
		GuestCount:      b.GuestCount,
		SpecialRequests: specialRequestsToPgtype(b.SpecialRequests),
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func specialRequestsToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomType(roomType string) *BookingBuilder {
	b.RoomType = roomType
	return b
}

func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuestCount(guestCount int32) *BookingBuilder {
	b.GuestCount = guestCount
	return b
}

func (b *BookingBuilder) WithSpecialRequests(requests string) *BookingBuilder {
	b.SpecialRequests = &requests
	return b
}
