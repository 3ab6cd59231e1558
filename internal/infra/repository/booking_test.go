//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/repository"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/tests/common/builder"
	repositorymock "hotel-booking-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created successfully",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(b.ID(), nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: overlapping stay rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, excl)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown room or user rejected by foreign key",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			domainBooking, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, domainBooking, mockDB)

			bookingID, actualError := repo.Create(ctx, mockDB, domainBooking)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Equal(t, uuid.Nil, bookingID, "bookingID should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.NotEqual(t, uuid.Nil, bookingID)
			}
		})
	}
}

// =============================================================================
// HasOverlap Tests
// =============================================================================

func TestBookingRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectOverlap bool
	}{
		{
			name: "success: overlapping booking exists",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CountOverlappingBookings(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectOverlap: true,
		},
		{
			name: "success: no overlapping bookings",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CountOverlappingBookings(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectOverlap: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CountOverlappingBookings(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			checkIn := booking.DateOnly(time.Now().AddDate(0, 1, 0))
			stay, err := booking.NewStayPeriod(checkIn, checkIn.AddDate(0, 0, 3))
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			overlaps, actualError := repo.HasOverlap(ctx, mockDB, roomID, stay)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, tc.expectOverlap, overlaps)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
