package booking

import (
	"errors"
	"time"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrGuestCountOutOfRange = errors.New("guest count out of range")
	ErrNegativeTotalPrice   = errors.New("total price cannot be negative")
)

// RoomSpec is the slice of room state the admission decision needs. The write
// side never depends on the full read model.
type RoomSpec struct {
	ID            uuid.UUID
	Number        string
	Type          room.Type
	PricePerNight int32
	MaxOccupancy  int32
}

type Services struct {
	Clock clock.Clock
}

// Booking references its room and user by identity; the room outlives any
// booking pointing at it. Room type and number are denormalized for display.
type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	userID          uuid.UUID
	roomType        room.Type
	roomNumber      string
	stay            StayPeriod
	guestCount      int32
	specialRequests SpecialRequests
	status          Status
	totalPrice      int32
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	services *Services,
	spec RoomSpec,
	userID uuid.UUID,
	stay StayPeriod,
	guestCount int32,
	requests SpecialRequests,
) (*Booking, error) {
	if err := stay.ValidateNotPast(services.Clock.Now()); err != nil {
		return nil, err
	}

	if guestCount < 1 || guestCount > spec.MaxOccupancy {
		return nil, ErrGuestCountOutOfRange
	}

	totalPrice := stay.Nights() * spec.PricePerNight
	if totalPrice < 0 {
		return nil, ErrNegativeTotalPrice
	}

	return &Booking{
		id:              uuid.New(),
		roomID:          spec.ID,
		userID:          userID,
		roomType:        spec.Type,
		roomNumber:      spec.Number,
		stay:            stay,
		guestCount:      guestCount,
		specialRequests: requests,
		status:          StatusConfirmed,
		totalPrice:      totalPrice,
	}, nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) RoomType() room.Type              { return b.roomType }
func (b *Booking) RoomNumber() string               { return b.roomNumber }
func (b *Booking) Stay() StayPeriod                 { return b.stay }
func (b *Booking) GuestCount() int32                { return b.guestCount }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) TotalPrice() int32                { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
