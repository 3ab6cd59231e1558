//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/room"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID            uuid.UUID
	Number        string
	Type          string
	PricePerNight int32
	Description   string
	BedsCount     int32
	MaxOccupancy  int32
	SizeSqm       int32
	Amenities     []string
	Images        []string
	IsAvailable   bool
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:            uuid.New(),
		Number:        "101",
		Type:          "standard",
		PricePerNight: 100,
		Description:   "Comfortable standard room with city view",
		BedsCount:     1,
		MaxOccupancy:  2,
		SizeSqm:       25,
		Amenities:     []string{"Wi-Fi", "TV"},
		Images:        []string{"standard-room-1.jpg"},
		IsAvailable:   true,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	roomType, err := room.NewType(b.Type)
	if err != nil {
		return nil, err
	}

	return room.NewRoom(
		b.Number,
		roomType,
		b.PricePerNight,
		b.Description,
		b.BedsCount,
		b.MaxOccupancy,
		b.SizeSqm,
		b.Amenities,
		b.Images,
	)
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:            b.ID,
		Number:        b.Number,
		Type:          b.Type,
		PricePerNight: b.PricePerNight,
		MaxOccupancy:  b.MaxOccupancy,
	}
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	now := time.Now()
	return &queries.RoomView{
		ID:            b.ID,
		RoomNumber:    b.Number,
		RoomType:      b.Type,
		PricePerNight: b.PricePerNight,
		Description:   b.Description,
		BedsCount:     b.BedsCount,
		MaxOccupancy:  b.MaxOccupancy,
		SizeSqm:       b.SizeSqm,
		Amenities:     b.Amenities,
		Images:        b.Images,
		IsAvailable:   b.IsAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *RoomBuilder) BuildInfra() sqlc.Rooms {
	now := time.Now()
	return sqlc.Rooms{
		ID:            b.ID,
		RoomNumber:    b.Number,
		RoomType:      b.Type,
		PricePerNight: b.PricePerNight,
		Description:   b.Description,
		BedsCount:     b.BedsCount,
		MaxOccupancy:  b.MaxOccupancy,
		SizeSqm:       b.SizeSqm,
		Amenities:     b.Amenities,
		Images:        b.Images,
		IsAvailable:   b.IsAvailable,
		CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// Fluent builder methods
func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithType(roomType string) *RoomBuilder {
	b.Type = roomType
	return b
}

func (b *RoomBuilder) WithPrice(price int32) *RoomBuilder {
	b.PricePerNight = price
	return b
}

func (b *RoomBuilder) WithMaxOccupancy(maxOccupancy int32) *RoomBuilder {
	b.MaxOccupancy = maxOccupancy
	return b
}

func (b *RoomBuilder) AsUnavailable() *RoomBuilder {
	b.IsAvailable = false
	return b
}
