package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/services/planner/domain"
)

// PutRoomBlock inserts or replaces a hotel room block.
func (s *Store) PutRoomBlock(ctx context.Context, block domain.RoomBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	blockID := strings.TrimSpace(block.ID)
	clientID := strings.TrimSpace(block.ClientID)
	hotelName := strings.TrimSpace(block.HotelName)
	if blockID == "" {
		return fmt.Errorf("room block id is required")
	}
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	if hotelName == "" {
		return fmt.Errorf("hotel name is required")
	}
	if block.RoomCount < 0 {
		return fmt.Errorf("room count must not be negative")
	}
	now := time.Now().UTC()
	createdAt := block.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := block.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO room_blocks (id, client_id, hotel_name, room_count, nightly_rate_cents, cutoff_date, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   client_id = excluded.client_id,
		   hotel_name = excluded.hotel_name,
		   room_count = excluded.room_count,
		   nightly_rate_cents = excluded.nightly_rate_cents,
		   cutoff_date = excluded.cutoff_date,
		   notes = excluded.notes,
		   updated_at = excluded.updated_at`,
		blockID,
		clientID,
		hotelName,
		block.RoomCount,
		block.NightlyRateCents,
		toMillis(block.CutoffDate),
		block.Notes,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put room block: %w", err)
	}
	return nil
}

// ListRoomBlocksByClient returns a client's room blocks ordered by cutoff date.
func (s *Store) ListRoomBlocksByClient(ctx context.Context, clientID string) ([]domain.RoomBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, fmt.Errorf("client id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, client_id, hotel_name, room_count, nightly_rate_cents, cutoff_date, notes, created_at, updated_at
		 FROM room_blocks WHERE client_id = ? ORDER BY cutoff_date, id`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list room blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var blocks []domain.RoomBlock
	for rows.Next() {
		var block domain.RoomBlock
		var cutoffDate, createdAt, updatedAt int64
		err := rows.Scan(
			&block.ID,
			&block.ClientID,
			&block.HotelName,
			&block.RoomCount,
			&block.NightlyRateCents,
			&cutoffDate,
			&block.Notes,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room block: %w", err)
		}
		block.CutoffDate = fromMillis(cutoffDate)
		block.CreatedAt = fromMillis(createdAt)
		block.UpdatedAt = fromMillis(updatedAt)
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room blocks: %w", err)
	}
	return blocks, nil
}
