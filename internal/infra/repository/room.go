package repository

import (
	"context"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	UpsertRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertRoomParams) (uuid.UUID, error)
}

// RoomRepository handles the write side of the room inventory. Only the
// seeding path uses it; the booking flow never mutates rooms.
type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{
		queries: queries,
	}
}

func (r *RoomRepository) Upsert(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error) {
	resultID, err := r.queries.UpsertRoom(ctx, tx, sqlc.UpsertRoomParams{
		ID:            rm.ID(),
		RoomNumber:    rm.Number(),
		RoomType:      rm.RoomType().String(),
		PricePerNight: rm.PricePerNight(),
		Description:   rm.Description(),
		BedsCount:     rm.BedsCount(),
		MaxOccupancy:  rm.MaxOccupancy(),
		SizeSqm:       rm.SizeSqm(),
		Amenities:     rm.Amenities(),
		Images:        rm.Images(),
		IsAvailable:   rm.IsAvailable(),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert room", err)
	}

	return resultID, nil
}
