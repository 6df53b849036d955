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

// PutOrg inserts or replaces an org record.
func (s *Store) PutOrg(ctx context.Context, org domain.Org) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	orgID := strings.TrimSpace(org.ID)
	name := strings.TrimSpace(org.Name)
	if orgID == "" {
		return fmt.Errorf("org id is required")
	}
	if name == "" {
		return fmt.Errorf("org name is required")
	}
	createdAt := org.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO orgs (id, name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		orgID,
		name,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put org: %w", err)
	}
	return nil
}

// GetOrg fetches one org by ID.
func (s *Store) GetOrg(ctx context.Context, id string) (domain.Org, error) {
	if err := ctx.Err(); err != nil {
		return domain.Org{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Org{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Org{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT id, name, created_at FROM orgs WHERE id = ?`, id)
	var org domain.Org
	var createdAt int64
	if err := row.Scan(&org.ID, &org.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Org{}, storage.ErrNotFound
		}
		return domain.Org{}, fmt.Errorf("get org: %w", err)
	}
	org.CreatedAt = fromMillis(createdAt)
	return org, nil
}
