package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read model (DTO for read side)
type RoomView struct {
	ID            uuid.UUID `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	PricePerNight int32     `json:"price"`
	Description   string    `json:"description"`
	BedsCount     int32     `json:"bedsCount"`
	MaxOccupancy  int32     `json:"maxOccupancy"`
	SizeSqm       int32     `json:"size"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RoomReadStore interface {
	FindAvailable(ctx context.Context) ([]*RoomView, error)
}

type RoomQueries interface {
	ListAvailable(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.FindAvailable(ctx)
}
