package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/logging"
	"github.com/dongho-jung/droidset/internal/settings"
)

// tableFor maps a namespace to its table. Only known tables are ever
// interpolated into SQL.
func tableFor(ns settings.Namespace) (string, error) {
	switch ns {
	case settings.NamespaceGlobal, settings.NamespaceSystem:
		return ns.Table(), nil
	}
	return "", fmt.Errorf("unknown namespace %v", ns)
}

// Get returns the stored value for setting in ns.
func (s *Store) Get(ctx context.Context, ns settings.Namespace, setting string) (string, bool, error) {
	table, err := tableFor(ns)
	if err != nil {
		return "", false, err
	}

	var value sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT value FROM "`+table+`" WHERE name = ?`, setting).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// put stores value if pkg holds WRITE_SETTINGS. The grant check and the
// write share one transaction.
func (s *Store) put(ctx context.Context, pkg string, ns settings.Namespace, setting, value string) error {
	table, err := tableFor(ns)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	mode, err := grantMode(ctx, tx, pkg)
	if err != nil {
		return err
	}
	if mode != "allow" {
		return settings.ErrPermissionDenied
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO "`+table+`" (name, value) VALUES (?, ?)`, setting, value); err != nil {
		return fmt.Errorf("writing %s/%s: %w", table, setting, err)
	}
	return tx.Commit()
}

// Keys lists the stored setting names of ns.
func (s *Store) Keys(ctx context.Context, ns settings.Namespace) ([]string, error) {
	table, err := tableFor(ns)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM "`+table+`" ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// App is the store as seen by one application package: reads are open,
// writes require the package's WRITE_SETTINGS grant.
type App struct {
	store *Store
	pkg   string
}

// App returns the view of the store for pkg.
func (s *Store) App(pkg string) *App {
	return &App{store: s, pkg: pkg}
}

// Package returns the package this view acts as.
func (a *App) Package() string {
	return a.pkg
}

func (a *App) GetString(ctx context.Context, ns settings.Namespace, setting string) (string, bool, error) {
	return a.store.Get(ctx, ns, setting)
}

func (a *App) PutString(ctx context.Context, ns settings.Namespace, setting, value string) error {
	return a.store.put(ctx, a.pkg, ns, setting, value)
}

func (a *App) PutInt(ctx context.Context, ns settings.Namespace, setting string, value int32) error {
	return a.store.put(ctx, a.pkg, ns, setting, strconv.FormatInt(int64(value), 10))
}

func (a *App) PutLong(ctx context.Context, ns settings.Namespace, setting string, value int64) error {
	return a.store.put(ctx, a.pkg, ns, setting, strconv.FormatInt(value, 10))
}

func (a *App) PutFloat(ctx context.Context, ns settings.Namespace, setting string, value float32) error {
	return a.store.put(ctx, a.pkg, ns, setting, settings.FormatFloat(value))
}

// Mode returns the package's WRITE_SETTINGS mode.
func (a *App) Mode(ctx context.Context) (string, error) {
	return a.store.Grant(ctx, a.pkg)
}

// SetMode allows or denies WRITE_SETTINGS for the package.
func (a *App) SetMode(ctx context.Context, allow bool) error {
	return a.store.SetGrant(ctx, a.pkg, allow)
}

// CanWrite reports whether the package holds WRITE_SETTINGS.
func (a *App) CanWrite(ctx context.Context) (bool, error) {
	mode, err := a.Mode(ctx)
	if err != nil {
		return false, err
	}
	return mode == "allow", nil
}

// RequestGrant has no screen to open locally; it records how to grant.
func (a *App) RequestGrant(ctx context.Context) error {
	logging.Info("local provider: grant %s with `%s grant --allow`", a.pkg, constants.AppName)
	return nil
}
