package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return rowToBookingView(row), nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.GetBookingsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

func rowToBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		RoomID:          row.RoomID,
		UserID:          row.UserID,
		RoomType:        row.RoomType,
		RoomNumber:      row.RoomNumber,
		CheckInDate:     pgconv.DateFromPgtype(row.CheckIn),
		CheckOutDate:    pgconv.DateFromPgtype(row.CheckOut),
		GuestCount:      row.GuestCount,
		SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		Status:          row.Status,
		TotalPrice:      row.TotalPrice,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
