package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// ScoresRepository implements repository.Scores by invoking the backend
// stored procedures. The procedures are owned by the upstream schema; their
// internals are opaque here and only their jsonb results are decoded.
type ScoresRepository struct {
	db *pgxpool.Pool
}

// NewScoresRepository creates a new scores repository
func NewScoresRepository(db *pgxpool.Pool) repository.Scores {
	return &ScoresRepository{db: db}
}

// CalculatePersonalScore invokes calculate_personal_score for one date and
// birth star
func (r *ScoresRepository) CalculatePersonalScore(ctx context.Context, date time.Time, userNakshatra string) (*domain.PersonalScore, error) {
	query := `SELECT calculate_personal_score($1, $2)`

	var payload []byte
	err := r.db.QueryRow(ctx, query, date.Format(domain.DateFormat), userNakshatra).Scan(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: calculate_personal_score: %v", domain.ErrScoreRPC, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: calculate_personal_score returned no payload", domain.ErrScoreRPC)
	}

	var score domain.PersonalScore
	if err := json.Unmarshal(payload, &score); err != nil {
		return nil, fmt.Errorf("%w: undecodable score payload: %v", domain.ErrScoreRPC, err)
	}
	return &score, nil
}

// GetNakshatraYogam invokes get_nakshatra_yogam for a star and weekday name
func (r *ScoresRepository) GetNakshatraYogam(ctx context.Context, nakshatraName, dayName string) (string, error) {
	query := `SELECT get_nakshatra_yogam($1, $2)`

	var yogam *string
	err := r.db.QueryRow(ctx, query, nakshatraName, dayName).Scan(&yogam)
	if err != nil {
		return "", fmt.Errorf("%w: get_nakshatra_yogam: %v", domain.ErrBackendQuery, err)
	}
	if yogam == nil {
		return "", nil
	}
	return *yogam, nil
}

// GetChandrashtamaDays invokes get_chandrashtama_days over a date range
func (r *ScoresRepository) GetChandrashtamaDays(ctx context.Context, userNakshatra string, start, end time.Time) ([]domain.ChandrashtamaDay, error) {
	query := `
		SELECT date, formatted_nakshatra
		FROM get_chandrashtama_days($1, $2, $3)`

	rows, err := r.db.Query(ctx, query,
		userNakshatra, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get_chandrashtama_days: %v", domain.ErrBackendQuery, err)
	}
	defer rows.Close()

	var days []domain.ChandrashtamaDay
	for rows.Next() {
		var day domain.ChandrashtamaDay
		if err := rows.Scan(&day.Date, &day.Nakshatra); err != nil {
			return nil, fmt.Errorf("%w: failed to scan chandrashtama row: %v", domain.ErrBackendQuery, err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read chandrashtama rows: %v", domain.ErrBackendQuery, err)
	}
	return days, nil
}
