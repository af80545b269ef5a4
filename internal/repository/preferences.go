package repository

import (
	"context"
	"time"
)

// Preferences defines data access for the service-owned user_preferences
// table. Keys are free-form but the handlers only write the known set
// (birth nakshatra, theme).
type Preferences interface {
	Get(ctx context.Context, userID, key string) (*Preference, error)
	GetAll(ctx context.Context, userID string) ([]Preference, error)
	Set(ctx context.Context, userID, key, value string) error
	Delete(ctx context.Context, userID, key string) error
}

// Preference is one stored key/value pair for a user.
type Preference struct {
	UserID    string    `json:"user_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
