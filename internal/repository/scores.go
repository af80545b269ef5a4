package repository

import (
	"context"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/domain"
)

// Scores defines access to the backend stored procedures. The procedures
// are opaque: each is invoked as SELECT fn(...) and returns a jsonb payload
// the implementation decodes into domain types.
type Scores interface {
	CalculatePersonalScore(ctx context.Context, date time.Time, userNakshatra string) (*domain.PersonalScore, error)
	GetNakshatraYogam(ctx context.Context, nakshatraName, dayName string) (string, error)
	GetChandrashtamaDays(ctx context.Context, userNakshatra string, start, end time.Time) ([]domain.ChandrashtamaDay, error)
}
