package repository

import (
	"context"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/domain"
)

// Panchangam defines read access to the backend-owned panchangam tables.
// The daily_panchangam and nakshatra_characteristics tables are maintained
// by the upstream pipeline; this service never writes to them.
type Panchangam interface {
	GetDay(ctx context.Context, date time.Time) (*domain.PanchangamDay, error)
	GetDaysInRange(ctx context.Context, start, end time.Time) ([]domain.PanchangamDay, error)
	GetNakshatraCharacteristics(ctx context.Context, englishName string) (*domain.NakshatraInfo, error)
}
