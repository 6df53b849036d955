package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aislehq/aisle/internal/services/planner/domain"
	"github.com/aislehq/aisle/internal/services/planner/storage"
)

const clientColumns = "id, org_id, couple_names, wedding_date, created_at, updated_at"

// PutClient inserts or replaces a client record.
func (s *Store) PutClient(ctx context.Context, client domain.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	clientID := strings.TrimSpace(client.ID)
	orgID := strings.TrimSpace(client.OrgID)
	coupleNames := strings.TrimSpace(client.CoupleNames)
	if clientID == "" {
		return fmt.Errorf("client id is required")
	}
	if orgID == "" {
		return fmt.Errorf("org id is required")
	}
	if coupleNames == "" {
		return fmt.Errorf("couple names are required")
	}
	now := time.Now().UTC()
	createdAt := client.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := client.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = now
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO clients (id, org_id, couple_names, wedding_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   org_id = excluded.org_id,
		   couple_names = excluded.couple_names,
		   wedding_date = excluded.wedding_date,
		   updated_at = excluded.updated_at`,
		clientID,
		orgID,
		coupleNames,
		toMillis(client.WeddingDate),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put client: %w", err)
	}
	return nil
}

// GetClient fetches one client by ID.
func (s *Store) GetClient(ctx context.Context, id string) (domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return domain.Client{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Client{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Client{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	client, err := scanClient(row)
	if err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

// ListClientsByOrg returns the org's clients ordered by creation time.
func (s *Store) ListClientsByOrg(ctx context.Context, orgID string) ([]domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return nil, fmt.Errorf("org id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+clientColumns+` FROM clients WHERE org_id = ? ORDER BY created_at, id`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var clients []domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}
	return clients, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var client domain.Client
	var weddingDate, createdAt, updatedAt int64
	err := row.Scan(
		&client.ID,
		&client.OrgID,
		&client.CoupleNames,
		&weddingDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, storage.ErrNotFound
		}
		return domain.Client{}, fmt.Errorf("scan client: %w", err)
	}
	client.WeddingDate = fromMillis(weddingDate)
	client.CreatedAt = fromMillis(createdAt)
	client.UpdatedAt = fromMillis(updatedAt)
	return client, nil
}
