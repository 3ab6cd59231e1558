package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingView carries everything the read side knows about a booking. The
// handler layer decides which fields are exposed; internal identifiers are
// never echoed to callers.
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomType        string    `json:"room_type"`
	RoomNumber      string    `json:"room_number"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
	GuestCount      int32     `json:"guest_count"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	Status          string    `json:"status"`
	TotalPrice      int32     `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	// GetByIDSystem bypasses ownership checks; used for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByUser returns the user's bookings, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.readStore.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}
