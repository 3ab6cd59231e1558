//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts one room directly, bypassing the seeding flow. Tests
// that need a type with exactly one room (contention scenarios) clear the
// inventory first and build it with this.
func CreateTestRoom(t *testing.T, db DBLike, number, roomType string, price, maxOccupancy int32) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO rooms (id, room_number, room_type, price_per_night, description, beds_count, max_occupancy, size_sqm, amenities, images, is_available)
		VALUES ($1, $2, $3, $4, $5, 1, $6, 25, '{"Wi-Fi"}', '{}', true)
		ON CONFLICT (room_number) DO NOTHING`,
		roomID, number, roomType, price, "Test room "+number, maxOccupancy)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM rooms WHERE room_number = $1", number).Scan(&roomID)
	}

	return roomID
}

func ClearRooms(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE bookings, rooms CASCADE")
	require.NoError(t, err)
}

// SeedReferenceData loads the standard room inventory: four standard rooms,
// four deluxe, two suites, mirroring the production seed.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (id, room_number, room_type, price_per_night, description, beds_count, max_occupancy, size_sqm, amenities, images, is_available)
		VALUES
		    (gen_random_uuid(), '101', 'standard', 100, 'Comfortable standard room with city view', 1, 2, 25, '{"Wi-Fi","TV"}', '{}', true),
		    (gen_random_uuid(), '102', 'standard', 100, 'Cozy standard room with garden view', 1, 2, 25, '{"Wi-Fi","TV"}', '{}', true),
		    (gen_random_uuid(), '103', 'standard', 100, 'Charming standard room with pool view', 2, 2, 25, '{"Wi-Fi","TV"}', '{}', true),
		    (gen_random_uuid(), '104', 'standard', 100, 'Pleasant standard room with garden view', 2, 2, 25, '{"Wi-Fi","TV"}', '{}', true),
		    (gen_random_uuid(), '201', 'deluxe', 200, 'Spacious deluxe room with panoramic city view', 2, 4, 35, '{"Wi-Fi","TV","Mini-bar"}', '{}', true),
		    (gen_random_uuid(), '202', 'deluxe', 200, 'Elegant deluxe room with pool view', 2, 4, 35, '{"Wi-Fi","TV","Mini-bar"}', '{}', true),
		    (gen_random_uuid(), '203', 'deluxe', 200, 'Modern deluxe room with city view', 2, 4, 35, '{"Wi-Fi","TV","Mini-bar"}', '{}', true),
		    (gen_random_uuid(), '204', 'deluxe', 200, 'Luxurious deluxe room with garden view', 2, 4, 35, '{"Wi-Fi","TV","Mini-bar"}', '{}', true),
		    (gen_random_uuid(), '301', 'suite', 300, 'Luxurious suite with separate living area and stunning views', 1, 3, 50, '{"Wi-Fi","TV","Mini-bar","Jacuzzi"}', '{}', true),
		    (gen_random_uuid(), '302', 'suite', 300, 'Premium suite with panoramic views and luxury amenities', 1, 3, 50, '{"Wi-Fi","TV","Mini-bar","Jacuzzi"}', '{}', true)
		ON CONFLICT (room_number) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
