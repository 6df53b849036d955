package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/services/planner/domain"
)

// PutGift inserts or replaces a gift record.
func (s *Store) PutGift(ctx context.Context, gift domain.Gift) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	giftID := strings.TrimSpace(gift.ID)
	clientID := strings.TrimSpace(gift.ClientID)
	guestName := strings.TrimSpace(gift.GuestName)
	if giftID == "" {
		return fmt.Errorf("gift id is required")
	}
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	if guestName == "" {
		return fmt.Errorf("guest name is required")
	}
	createdAt := gift.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	thankYouSent := 0
	if gift.ThankYouSent {
		thankYouSent = 1
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO gifts (id, client_id, guest_name, description, thank_you_sent, received_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   client_id = excluded.client_id,
		   guest_name = excluded.guest_name,
		   description = excluded.description,
		   thank_you_sent = excluded.thank_you_sent,
		   received_at = excluded.received_at`,
		giftID,
		clientID,
		guestName,
		gift.Description,
		thankYouSent,
		toMillis(gift.ReceivedAt),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put gift: %w", err)
	}
	return nil
}

// ListGiftsByClient returns a client's gifts, most recently received first.
func (s *Store) ListGiftsByClient(ctx context.Context, clientID string) ([]domain.Gift, error) {
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
		`SELECT id, client_id, guest_name, description, thank_you_sent, received_at, created_at
		 FROM gifts WHERE client_id = ? ORDER BY received_at DESC, id`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var gifts []domain.Gift
	for rows.Next() {
		var gift domain.Gift
		var thankYouSent int
		var receivedAt, createdAt int64
		err := rows.Scan(
			&gift.ID,
			&gift.ClientID,
			&gift.GuestName,
			&gift.Description,
			&thankYouSent,
			&receivedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan gift: %w", err)
		}
		gift.ThankYouSent = thankYouSent != 0
		gift.ReceivedAt = fromMillis(receivedAt)
		gift.CreatedAt = fromMillis(createdAt)
		gifts = append(gifts, gift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gifts: %w", err)
	}
	return gifts, nil
}
