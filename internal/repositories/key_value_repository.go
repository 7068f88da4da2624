package repositories

import (
	"database/sql"
	"errors"
	"time"
)

// KeyValueRepository stores opaque string values by key
type KeyValueRepository struct {
	db *sql.DB
}

func NewKeyValueRepository(db *sql.DB) *KeyValueRepository {
	return &KeyValueRepository{
		db: db,
	}
}

// Get returns the value stored under key. ok is false when nothing is stored.
func (r *KeyValueRepository) Get(key string) (string, bool, error) {
	query := `SELECT value FROM key_values WHERE key = ?`

	var value string
	err := r.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Set creates or replaces the value stored under key
func (r *KeyValueRepository) Set(key, value string) error {
	query := `
		INSERT INTO key_values (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, key, value, time.Now())
	return err
}

// Delete removes the value stored under key
func (r *KeyValueRepository) Delete(key string) error {
	query := `DELETE FROM key_values WHERE key = ?`

	result, err := r.db.Exec(query, key)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
