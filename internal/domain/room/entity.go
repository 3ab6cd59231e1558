package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber     = errors.New("room number cannot be empty")
	ErrNegativePrice       = errors.New("nightly price cannot be negative")
	ErrInvalidBedsCount    = errors.New("beds count must be at least 1")
	ErrInvalidMaxOccupancy = errors.New("max occupancy must be at least 1")
	ErrInvalidSize         = errors.New("size must be at least 1")
	ErrEmptyDescription    = errors.New("description cannot be empty")
	ErrRoomNumberTooLong   = errors.New("room number is too long (max 16 characters)")
)

const MaxRoomNumberLength = 16

// Room is a physical room. Rooms are created by the seeding process and are
// read-only as far as the booking flow is concerned; availability over a date
// range is a query over bookings, not room state.
type Room struct {
	id            uuid.UUID
	number        string
	roomType      Type
	pricePerNight int32
	description   string
	bedsCount     int32
	maxOccupancy  int32
	sizeSqm       int32
	amenities     []string
	images        []string
	isAvailable   bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRoom(
	number string,
	roomType Type,
	pricePerNight int32,
	description string,
	bedsCount, maxOccupancy, sizeSqm int32,
	amenities, images []string,
) (*Room, error) {
	number = strings.TrimSpace(number)
	switch {
	case number == "":
		return nil, ErrEmptyRoomNumber
	case len(number) > MaxRoomNumberLength:
		return nil, ErrRoomNumberTooLong
	case !roomType.IsValid():
		return nil, ErrInvalidType
	case pricePerNight < 0:
		return nil, ErrNegativePrice
	case strings.TrimSpace(description) == "":
		return nil, ErrEmptyDescription
	case bedsCount < 1:
		return nil, ErrInvalidBedsCount
	case maxOccupancy < 1:
		return nil, ErrInvalidMaxOccupancy
	case sizeSqm < 1:
		return nil, ErrInvalidSize
	}

	return &Room{
		id:            uuid.New(),
		number:        number,
		roomType:      roomType,
		pricePerNight: pricePerNight,
		description:   strings.TrimSpace(description),
		bedsCount:     bedsCount,
		maxOccupancy:  maxOccupancy,
		sizeSqm:       sizeSqm,
		amenities:     amenities,
		images:        images,
		isAvailable:   true,
	}, nil
}

func (r *Room) CanAccommodate(guestCount int32) bool {
	return guestCount >= 1 && guestCount <= r.maxOccupancy
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Number() string       { return r.number }
func (r *Room) RoomType() Type       { return r.roomType }
func (r *Room) PricePerNight() int32 { return r.pricePerNight }
func (r *Room) Description() string  { return r.description }
func (r *Room) BedsCount() int32     { return r.bedsCount }
func (r *Room) MaxOccupancy() int32  { return r.maxOccupancy }
func (r *Room) SizeSqm() int32       { return r.sizeSqm }
func (r *Room) Amenities() []string  { return r.amenities }
func (r *Room) Images() []string     { return r.images }
func (r *Room) IsAvailable() bool    { return r.isAvailable }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
