package out

import (
	"context"
	"database/sql"
	"fmt"

	configout "pomo/internal/modules/config/port/out"
	apperrors "pomo/internal/platform/errors"
	"pomo/internal/platform/sqlite"
)

type SQLiteConfigStore struct {
	db *sqlite.DB
}

func NewSQLiteConfigStore(db *sqlite.DB) configout.ConfigStore {
	return &SQLiteConfigStore{db: db}
}

func (s *SQLiteConfigStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.Querier(ctx).QueryRowContext(ctx, `SELECT value FROM config WHERE key = ?;`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get config %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteConfigStore) Set(ctx context.Context, key, value string) error {
	const stmt = `
INSERT INTO config (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;
`
	if _, err := s.db.Querier(ctx).ExecContext(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteConfigStore) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.Querier(ctx).QueryContext(ctx, `SELECT key, value FROM config;`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return values, nil
}
