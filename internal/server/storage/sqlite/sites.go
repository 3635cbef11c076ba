package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/gophtext/internal/models"
	"github.com/iudanet/gophtext/internal/server/storage"
)

// CreateSite registers a new site
func (s *Storage) CreateSite(ctx context.Context, site *models.Site) error {
	query := `
		INSERT INTO sites (site_id, key_hash, key_salt, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		site.ID,
		site.KeyHash,
		site.KeySalt,
		site.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return storage.ErrSiteAlreadyExists
		}
		return fmt.Errorf("failed to insert site: %w", err)
	}

	return nil
}

// GetSite retrieves site by id
func (s *Storage) GetSite(ctx context.Context, siteID string) (*models.Site, error) {
	query := `
		SELECT site_id, key_hash, key_salt, created_at
		FROM sites
		WHERE site_id = ?
	`

	site := &models.Site{}
	err := s.db.QueryRowContext(ctx, query, siteID).Scan(
		&site.ID,
		&site.KeyHash,
		&site.KeySalt,
		&site.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return site, nil
}

// isConstraintViolation проверяет код ошибки SQLite, а не текст сообщения.
// Младший байт расширенного кода - основной код ошибки.
func isConstraintViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
