package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scentid/scentid-cli/internal/dbx"
)

// tokenKey is the single durable entry the client keeps.
const tokenKey = "access_token"

// SQLiteRepository persists the credential token in a key-value table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, tokenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session[%s]: %w", tokenKey, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, tokenKey, token)
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", tokenKey, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", tokenKey, err)
	}
	return nil
}
