package panchangam

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
	"github.com/tamilpanchangam/panchangam/internal/nakshatra"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// Service defines the interface for panchangam calendar operations
type Service interface {
	GetDaily(ctx context.Context, date time.Time) (*DailyPanchangam, error)
	GetSpecialDays(ctx context.Context, req SpecialDaysRequest) ([]SpecialDay, error)
	GetRSForecast(ctx context.Context, req RSForecastRequest) ([]RSForecastDay, error)
	GetMoonPhases(ctx context.Context, year int, month time.Month) ([]MoonDay, error)
}

// DailyPanchangam is the enriched single-day view: the raw almanac record
// plus the yogam lookup, resolved nakshatra names, moon phase and the RS
// advisory when the day's star calls for one.
type DailyPanchangam struct {
	Day              *domain.PanchangamDay `json:"day"`
	NakshatraEnglish string                `json:"nakshatra_english"`
	NakshatraTamil   string                `json:"nakshatra_tamil"`
	NakshatraYogam   string                `json:"nakshatra_yogam"`
	TithiDisplay     string                `json:"tithi_display"`
	MoonPhase        domain.MoonPhase      `json:"moon_phase"`
	RSAdvisory       *domain.RSAdvisory    `json:"rs_advisory,omitempty"`
	SpecialDayName   string                `json:"special_day_name"`
}

// SpecialDaysRequest selects a year (and optionally one month) of special
// days, narrowed by category and paksham.
type SpecialDaysRequest struct {
	Year     int
	Month    time.Month // 0 means the whole year
	Category domain.SpecialDayCategory
	Paksham  string // PakshamAll, PakshamShukla or PakshamKrishna
}

// SpecialDay is one matching day in a special-days listing.
type SpecialDay struct {
	Day          *domain.PanchangamDay `json:"day"`
	Name         string                `json:"name"`
	TithiDisplay string                `json:"tithi_display"`
}

// RSForecastRequest scans forward from a start date for RS Nakshatra days.
type RSForecastRequest struct {
	From      time.Time
	Days      int    // 0 means DefaultForecastDays
	Nakshatra string // optional filter, any spelling; empty means all
}

// RSForecastDay is one upcoming RS Nakshatra day.
type RSForecastDay struct {
	Date             time.Time `json:"date"`
	DayOfWeek        string    `json:"day_of_week"`
	NakshatraEnglish string    `json:"nakshatra_english"`
	NakshatraTamil   string    `json:"nakshatra_tamil"`
}

// MoonDay is one cell of the moon-phase month grid. Waxing and waning come
// from the day's first tithi phase, so at most one is set.
type MoonDay struct {
	Date         time.Time `json:"date"`
	TithiName    string    `json:"tithi_name"`
	Paksha       string    `json:"paksha"`
	Waxing       bool      `json:"waxing"`
	Waning       bool      `json:"waning"`
	SpecialDay   string    `json:"special_day,omitempty"`
	IsRSDay      bool      `json:"is_rs_day"`
	HasPanchanga bool      `json:"has_panchangam"`
}

type service struct {
	repo   repository.Panchangam
	scores repository.Scores
	now    func() time.Time
}

// NewService creates a new panchangam service
func NewService(repo repository.Panchangam, scores repository.Scores) Service {
	return &service{repo: repo, scores: scores, now: time.Now}
}

// GetDaily loads one day and enriches it. A yogam lookup failure is logged
// and degraded to a placeholder rather than failing the whole view.
func (s *service) GetDaily(ctx context.Context, date time.Time) (*DailyPanchangam, error) {
	log := logger.FromContext(ctx)

	day, err := s.repo.GetDay(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrDayNotFound) {
			return nil, err
		}
		log.Error("Failed to load panchangam day", "error", err, "date", date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}
	metrics.PanchangamLookups.Inc()

	english, tamil := nakshatra.DisplayNames(day.MainNakshatra)

	yogam := PlaceholderNA
	dayName := day.Date.Weekday().String()
	if y, err := s.scores.GetNakshatraYogam(ctx, day.MainNakshatra, dayName); err != nil {
		log.Warn("Nakshatra yogam lookup failed", "error", err,
			"nakshatra", day.MainNakshatra, "day", dayName)
	} else if y != "" {
		yogam = y
	}

	var advisory *domain.RSAdvisory
	if nakshatra.IsRS(day.MainNakshatra) {
		advisory = &domain.RSAdvisory{
			IsRSNakshatra:      true,
			AvoidMedical:       true,
			AvoidTravel:        true,
			AvoidFinancial:     true,
			ShortDescription:   RSAdvisoryShortDesc,
			NakshatraName:      day.MainNakshatra,
			NakshatraNameTamil: tamil,
		}
	}

	return &DailyPanchangam{
		Day:              day,
		NakshatraEnglish: english,
		NakshatraTamil:   tamil,
		NakshatraYogam:   yogam,
		TithiDisplay:     day.Tithi.DisplayName(s.now()),
		MoonPhase:        day.Tithi.MoonPhase(),
		RSAdvisory:       advisory,
		SpecialDayName:   day.SpecialDayName(),
	}, nil
}

// GetSpecialDays lists the flagged days of a year or month, narrowed by
// category and optionally by the paksham of each day's active tithi.
func (s *service) GetSpecialDays(ctx context.Context, req SpecialDaysRequest) ([]SpecialDay, error) {
	log := logger.FromContext(ctx)

	start, end, err := monthRange(req.Year, req.Month)
	if err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = domain.CategoryAll
	}

	days, err := s.repo.GetDaysInRange(ctx, start, end)
	if err != nil {
		log.Error("Failed to query special days", "error", err, "year", req.Year)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}

	now := s.now()
	out := make([]SpecialDay, 0)
	for i := range days {
		day := &days[i]
		if !day.MatchesCategory(category) {
			continue
		}
		if !matchesPaksham(day, req.Paksham, now) {
			continue
		}
		out = append(out, SpecialDay{
			Day:          day,
			Name:         day.SpecialDayName(),
			TithiDisplay: day.Tithi.DisplayName(now),
		})
	}
	return out, nil
}

// GetRSForecast scans forward for RS Nakshatra days. The optional filter
// accepts any spelling and matches through the resolver, so asking for
// "Swathi" also matches rows stored as "சுவாதி".
func (s *service) GetRSForecast(ctx context.Context, req RSForecastRequest) ([]RSForecastDay, error) {
	log := logger.FromContext(ctx)

	horizon := req.Days
	if horizon <= 0 {
		horizon = DefaultForecastDays
	}
	if horizon > MaxForecastDays {
		horizon = MaxForecastDays
	}
	from := req.From
	if from.IsZero() {
		from = s.now().Truncate(24 * time.Hour)
	}
	end := from.AddDate(0, 0, horizon)

	var filterEnglish string
	if req.Nakshatra != "" {
		res, ok := nakshatra.Resolve(req.Nakshatra)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNakshatra, req.Nakshatra)
		}
		filterEnglish = res.English
	}

	days, err := s.repo.GetDaysInRange(ctx, from, end)
	if err != nil {
		log.Error("Failed to query RS forecast range", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}

	out := make([]RSForecastDay, 0)
	for i := range days {
		day := &days[i]
		res, ok := nakshatra.Resolve(day.MainNakshatra)
		if !ok || !res.IsRS {
			continue
		}
		if filterEnglish != "" && res.English != filterEnglish {
			continue
		}
		out = append(out, RSForecastDay{
			Date:             day.Date,
			DayOfWeek:        day.Date.Weekday().String(),
			NakshatraEnglish: res.English,
			NakshatraTamil:   res.Tamil,
		})
	}
	return out, nil
}

// GetMoonPhases builds the waxing/waning grid for one month. Days the
// backend has no row for still appear, with HasPanchanga false, so the grid
// stays rectangular.
func (s *service) GetMoonPhases(ctx context.Context, year int, month time.Month) ([]MoonDay, error) {
	log := logger.FromContext(ctx)

	start, end, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}

	days, err := s.repo.GetDaysInRange(ctx, start, end)
	if err != nil {
		log.Error("Failed to query moon phase range", "error", err, "year", year, "month", month)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}

	byDate := make(map[string]*domain.PanchangamDay, len(days))
	for i := range days {
		byDate[days[i].DateString()] = &days[i]
	}

	out := make([]MoonDay, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cell := MoonDay{Date: d, TithiName: "-", Paksha: "-"}
		if day, ok := byDate[d.Format(domain.DateFormat)]; ok {
			cell.HasPanchanga = true
			cell.IsRSDay = nakshatra.IsRS(day.MainNakshatra)
			cell.SpecialDay = specialOrEmpty(day)
			if day.Tithi.State == domain.TithiParsed && len(day.Tithi.Phases) > 0 {
				first := day.Tithi.Phases[0]
				if first.Name != "" {
					cell.TithiName = first.Name
				}
				if first.Paksha != "" {
					cell.Paksha = first.Paksha
				}
				cell.Waxing = first.Paksha == domain.PakshaShukla
				cell.Waning = first.Paksha == domain.PakshaKrishna
			}
		}
		out = append(out, cell)
	}
	return out, nil
}

// matchesPaksham checks the day's active tithi phase against the filter.
// Days whose tithi did not parse match only the "all" filter.
func matchesPaksham(day *domain.PanchangamDay, paksham string, now time.Time) bool {
	switch paksham {
	case "", PakshamAll:
		return true
	}
	phase := day.Tithi.First(now)
	if phase == nil {
		return false
	}
	switch paksham {
	case PakshamShukla:
		return strings.Contains(phase.Paksha, "சுக்ல")
	case PakshamKrishna:
		return strings.Contains(phase.Paksha, "கிருஷ்ண")
	}
	return true
}

func specialOrEmpty(day *domain.PanchangamDay) string {
	if !day.HasAnySpecialFlag() {
		return ""
	}
	return day.SpecialDayName()
}

// monthRange returns the inclusive first and last day of the month, or of
// the whole year when month is zero.
func monthRange(year int, month time.Month) (time.Time, time.Time, error) {
	if year < 1900 || year > 2200 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: year %d", domain.ErrInvalidDateRange, year)
	}
	if month == 0 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), nil
	}
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: month %d", domain.ErrInvalidDateRange, month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}
