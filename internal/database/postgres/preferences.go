package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// PreferencesRepository implements repository.Preferences for PostgreSQL
type PreferencesRepository struct {
	db *pgxpool.Pool
}

// NewPreferencesRepository creates a new preferences repository
func NewPreferencesRepository(db *pgxpool.Pool) repository.Preferences {
	return &PreferencesRepository{db: db}
}

// Get loads one preference for a user
func (r *PreferencesRepository) Get(ctx context.Context, userID, key string) (*repository.Preference, error) {
	query := `
		SELECT user_id, pref_key, pref_value, updated_at
		FROM user_preferences
		WHERE user_id = $1 AND pref_key = $2`

	var pref repository.Preference
	err := r.db.QueryRow(ctx, query, userID, key).Scan(
		&pref.UserID, &pref.Key, &pref.Value, &pref.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to load preference: %w", err)
	}
	return &pref, nil
}

// GetAll loads every preference for a user
func (r *PreferencesRepository) GetAll(ctx context.Context, userID string) ([]repository.Preference, error) {
	query := `
		SELECT user_id, pref_key, pref_value, updated_at
		FROM user_preferences
		WHERE user_id = $1
		ORDER BY pref_key`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []repository.Preference
	for rows.Next() {
		var pref repository.Preference
		if err := rows.Scan(&pref.UserID, &pref.Key, &pref.Value, &pref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read preference rows: %w", err)
	}
	return prefs, nil
}

// Set upserts one preference
func (r *PreferencesRepository) Set(ctx context.Context, userID, key, value string) error {
	query := `
		INSERT INTO user_preferences (user_id, pref_key, pref_value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, pref_key)
		DO UPDATE SET pref_value = EXCLUDED.pref_value, updated_at = now()`

	if _, err := r.db.Exec(ctx, query, userID, key, value); err != nil {
		return fmt.Errorf("failed to store preference: %w", err)
	}
	return nil
}

// Delete removes one preference; deleting an absent key is not an error
func (r *PreferencesRepository) Delete(ctx context.Context, userID, key string) error {
	query := `DELETE FROM user_preferences WHERE user_id = $1 AND pref_key = $2`

	if _, err := r.db.Exec(ctx, query, userID, key); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}
