package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// PanchangamRepository implements repository.Panchangam for PostgreSQL
type PanchangamRepository struct {
	db *pgxpool.Pool
}

// NewPanchangamRepository creates a new panchangam repository
func NewPanchangamRepository(db *pgxpool.Pool) repository.Panchangam {
	return &PanchangamRepository{db: db}
}

// panchangamColumns is the shared select list for daily_panchangam reads.
// The tithi column is selected as text so the parse states stay visible to
// the domain layer instead of being coerced by the driver.
const panchangamColumns = `
	date, main_nakshatra, COALESCE(vaara, ''), COALESCE(tithi::text, ''),
	is_pournami, is_amavasai, is_ekadashi, is_dwadashi,
	is_ashtami, is_navami, is_trayodashi, is_sashti,
	is_mythra_muhurtham, is_rs_nakshatra,
	cosmic_score,
	COALESCE(rahu_kalam, ''), COALESCE(yamagandam, ''),
	COALESCE(kuligai, ''), COALESCE(abhijit_muhurta, ''),
	COALESCE(chandrashtama_for, '{}')`

func scanPanchangamDay(row pgx.Row) (*domain.PanchangamDay, error) {
	var day domain.PanchangamDay
	var tithiRaw string
	err := row.Scan(
		&day.Date,
		&day.MainNakshatra,
		&day.Vaara,
		&tithiRaw,
		&day.IsPournami,
		&day.IsAmavasai,
		&day.IsEkadashi,
		&day.IsDwadashi,
		&day.IsAshtami,
		&day.IsNavami,
		&day.IsTrayodashi,
		&day.IsSashti,
		&day.IsMythraMuhurtham,
		&day.IsRSNakshatra,
		&day.CosmicScore,
		&day.RahuKalam,
		&day.Yamagandam,
		&day.Kuligai,
		&day.AbhijitMuhurta,
		&day.ChandrashtamaFor,
	)
	if err != nil {
		return nil, err
	}
	day.Tithi = domain.ParseTithi([]byte(tithiRaw))
	return &day, nil
}

// GetDay loads one daily_panchangam row
func (r *PanchangamRepository) GetDay(ctx context.Context, date time.Time) (*domain.PanchangamDay, error) {
	query := `SELECT` + panchangamColumns + `
		FROM daily_panchangam
		WHERE date = $1`

	day, err := scanPanchangamDay(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDayNotFound
		}
		return nil, fmt.Errorf("failed to load panchangam day: %w", err)
	}
	return day, nil
}

// GetDaysInRange loads the inclusive date range ordered by date
func (r *PanchangamRepository) GetDaysInRange(ctx context.Context, start, end time.Time) ([]domain.PanchangamDay, error) {
	query := `SELECT` + panchangamColumns + `
		FROM daily_panchangam
		WHERE date >= $1 AND date <= $2
		ORDER BY date`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query panchangam range: %w", err)
	}
	defer rows.Close()

	var days []domain.PanchangamDay
	for rows.Next() {
		day, err := scanPanchangamDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan panchangam row: %w", err)
		}
		days = append(days, *day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read panchangam rows: %w", err)
	}
	return days, nil
}

// GetNakshatraCharacteristics loads one nakshatra_characteristics row by
// canonical English name
func (r *PanchangamRepository) GetNakshatraCharacteristics(ctx context.Context, englishName string) (*domain.NakshatraInfo, error) {
	query := `
		SELECT english_name, COALESCE(tamil_name, ''),
		       COALESCE(deity, ''), COALESCE(symbol, ''),
		       COALESCE(ruler, ''), COALESCE(element, ''),
		       COALESCE(qualities, '{}'),
		       COALESCE(favorable_activities, '{}'),
		       COALESCE(unfavorable_activities, '{}')
		FROM nakshatra_characteristics
		WHERE english_name = $1`

	var info domain.NakshatraInfo
	err := r.db.QueryRow(ctx, query, englishName).Scan(
		&info.EnglishName,
		&info.TamilName,
		&info.Deity,
		&info.Symbol,
		&info.Ruler,
		&info.Element,
		&info.Qualities,
		&info.Favorable,
		&info.Unfavorable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownNakshatra
		}
		return nil, fmt.Errorf("failed to load nakshatra characteristics: %w", err)
	}
	return &info, nil
}
