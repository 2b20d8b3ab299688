package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dongho-jung/droidset/internal/constants"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func grantMode(ctx context.Context, q queryRower, pkg string) (string, error) {
	var mode string
	err := q.QueryRowContext(ctx, `SELECT mode FROM grants WHERE package = ? AND op = ?`,
		pkg, constants.OpWriteSettings).Scan(&mode)
	if errors.Is(err, sql.ErrNoRows) {
		return "default", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading grant for %s: %w", pkg, err)
	}
	return mode, nil
}

// Grant returns the WRITE_SETTINGS mode of pkg ("allow", "deny" or
// "default" when never set).
func (s *Store) Grant(ctx context.Context, pkg string) (string, error) {
	return grantMode(ctx, s.db, pkg)
}

// SetGrant allows or denies WRITE_SETTINGS for pkg.
func (s *Store) SetGrant(ctx context.Context, pkg string, allow bool) error {
	mode := "deny"
	if allow {
		mode = "allow"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO grants (package, op, mode) VALUES (?, ?, ?)
		ON CONFLICT (package, op) DO UPDATE SET mode = excluded.mode, updated_at = CURRENT_TIMESTAMP`,
		pkg, constants.OpWriteSettings, mode)
	if err != nil {
		return fmt.Errorf("writing grant for %s: %w", pkg, err)
	}
	return nil
}
