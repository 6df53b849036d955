package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/services/planner/domain"
)

// PutSmsMessage inserts or replaces an SMS log entry.
func (s *Store) PutSmsMessage(ctx context.Context, message domain.SmsMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	messageID := strings.TrimSpace(message.ID)
	clientID := strings.TrimSpace(message.ClientID)
	if messageID == "" {
		return fmt.Errorf("message id is required")
	}
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	switch message.Direction {
	case domain.SmsDirectionOutbound, domain.SmsDirectionInbound:
	default:
		return fmt.Errorf("unknown sms direction %q", message.Direction)
	}
	switch message.Status {
	case domain.SmsStatusQueued, domain.SmsStatusSent, domain.SmsStatusDelivered, domain.SmsStatusFailed:
	default:
		return fmt.Errorf("unknown sms status %q", message.Status)
	}
	createdAt := message.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sms_messages (id, client_id, phone_number, body, direction, status, sent_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   client_id = excluded.client_id,
		   phone_number = excluded.phone_number,
		   body = excluded.body,
		   direction = excluded.direction,
		   status = excluded.status,
		   sent_at = excluded.sent_at`,
		messageID,
		clientID,
		message.PhoneNumber,
		message.Body,
		string(message.Direction),
		string(message.Status),
		toMillis(message.SentAt),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put sms message: %w", err)
	}
	return nil
}

// ListSmsMessagesByClient returns a client's SMS log, most recent first. A
// non-positive limit returns the full log.
func (s *Store) ListSmsMessagesByClient(ctx context.Context, clientID string, limit int) ([]domain.SmsMessage, error) {
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

	query := `SELECT id, client_id, phone_number, body, direction, status, sent_at, created_at
		 FROM sms_messages WHERE client_id = ? ORDER BY sent_at DESC, id`
	args := []any{clientID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sms messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []domain.SmsMessage
	for rows.Next() {
		var message domain.SmsMessage
		var direction, status string
		var sentAt, createdAt int64
		err := rows.Scan(
			&message.ID,
			&message.ClientID,
			&message.PhoneNumber,
			&message.Body,
			&direction,
			&status,
			&sentAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sms message: %w", err)
		}
		message.Direction = domain.SmsDirection(direction)
		message.Status = domain.SmsStatus(status)
		message.SentAt = fromMillis(sentAt)
		message.CreatedAt = fromMillis(createdAt)
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sms messages: %w", err)
	}
	return messages, nil
}
