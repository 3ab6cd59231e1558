package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"
)

type RoomReadQueries interface {
	GetAvailableRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	GetAvailableRoomsByType(ctx context.Context, db sqlc.DBTX, roomType string) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries *sqlc.Queries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.GetAvailableRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = rowToRoomView(row)
	}
	return result, nil
}

// FindAvailableByType returns candidate rooms of one type ordered by room
// number, so booking admission walks the inventory deterministically.
func (r *RoomReadStore) FindAvailableByType(ctx context.Context, roomType string) ([]*queries.RoomView, error) {
	rows, err := r.queries.GetAvailableRoomsByType(ctx, r.db, roomType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available rooms by type", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = rowToRoomView(row)
	}
	return result, nil
}

func rowToRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:            row.ID,
		RoomNumber:    row.RoomNumber,
		RoomType:      row.RoomType,
		PricePerNight: row.PricePerNight,
		Description:   row.Description,
		BedsCount:     row.BedsCount,
		MaxOccupancy:  row.MaxOccupancy,
		SizeSqm:       row.SizeSqm,
		Amenities:     row.Amenities,
		Images:        row.Images,
		IsAvailable:   row.IsAvailable,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
