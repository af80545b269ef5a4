package panchangam

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamilpanchangam/panchangam/internal/domain"
)

// mockPanchangamRepository implements repository.Panchangam for testing
type mockPanchangamRepository struct {
	days     []domain.PanchangamDay
	rangeErr error
}

func (m *mockPanchangamRepository) GetDay(ctx context.Context, date time.Time) (*domain.PanchangamDay, error) {
	for i := range m.days {
		if m.days[i].Date.Equal(date) {
			return &m.days[i], nil
		}
	}
	return nil, domain.ErrDayNotFound
}

func (m *mockPanchangamRepository) GetDaysInRange(ctx context.Context, start, end time.Time) ([]domain.PanchangamDay, error) {
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	var out []domain.PanchangamDay
	for _, d := range m.days {
		if !d.Date.Before(start) && !d.Date.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockPanchangamRepository) GetNakshatraCharacteristics(ctx context.Context, englishName string) (*domain.NakshatraInfo, error) {
	return nil, domain.ErrUnknownNakshatra
}

// mockScoresRepository implements repository.Scores for testing
type mockScoresRepository struct {
	yogam    string
	yogamErr error
}

func (m *mockScoresRepository) CalculatePersonalScore(ctx context.Context, date time.Time, userNakshatra string) (*domain.PersonalScore, error) {
	return nil, domain.ErrScoreRPC
}

func (m *mockScoresRepository) GetNakshatraYogam(ctx context.Context, nakshatraName, dayName string) (string, error) {
	if m.yogamErr != nil {
		return "", m.yogamErr
	}
	return m.yogam, nil
}

func (m *mockScoresRepository) GetChandrashtamaDays(ctx context.Context, userNakshatra string, start, end time.Time) ([]domain.ChandrashtamaDay, error) {
	return nil, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parsedTithi(name, paksha string, day time.Time) domain.TithiList {
	return domain.TithiList{
		State: domain.TithiParsed,
		Phases: []domain.TithiPhase{{
			Name:   name,
			Paksha: paksha,
			Start:  day,
			End:    day.AddDate(0, 0, 1),
		}},
	}
}

func TestGetDaily(t *testing.T) {
	d := date(2025, time.March, 3)
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{{
		Date:          d,
		MainNakshatra: "Rohini",
		Vaara:         "Monday",
		Tithi:         parsedTithi("திரிதியை", domain.PakshaShukla, d),
	}}}
	scores := &mockScoresRepository{yogam: "சித்த யோகம்"}
	svc := NewService(repo, scores)

	daily, err := svc.GetDaily(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, "Rohini", daily.NakshatraEnglish)
	assert.Equal(t, "ரோகிணி", daily.NakshatraTamil)
	assert.Equal(t, "சித்த யோகம்", daily.NakshatraYogam)
	assert.Equal(t, "திரிதியை", daily.TithiDisplay)
	assert.True(t, daily.MoonPhase.IsValarPirai)
	assert.False(t, daily.MoonPhase.IsTheiPirai)
	assert.Nil(t, daily.RSAdvisory)
	assert.Equal(t, "Normal Day", daily.SpecialDayName)
}

func TestGetDailyRSAdvisory(t *testing.T) {
	d := date(2025, time.March, 4)
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{{
		Date:          d,
		MainNakshatra: "சுவாதி", // Swati, an RS nakshatra
	}}}
	svc := NewService(repo, &mockScoresRepository{})

	daily, err := svc.GetDaily(context.Background(), d)
	require.NoError(t, err)

	require.NotNil(t, daily.RSAdvisory)
	assert.True(t, daily.RSAdvisory.AvoidMedical)
	assert.True(t, daily.RSAdvisory.AvoidTravel)
	assert.True(t, daily.RSAdvisory.AvoidFinancial)
	assert.Equal(t, RSAdvisoryShortDesc, daily.RSAdvisory.ShortDescription)
	assert.Equal(t, "சுவாதி", daily.RSAdvisory.NakshatraNameTamil)
}

func TestGetDailyYogamFailureDegrades(t *testing.T) {
	d := date(2025, time.March, 3)
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{{
		Date:          d,
		MainNakshatra: "Rohini",
	}}}
	scores := &mockScoresRepository{yogamErr: errors.New("function does not exist")}
	svc := NewService(repo, scores)

	daily, err := svc.GetDaily(context.Background(), d)
	require.NoError(t, err, "yogam failure must not fail the daily view")
	assert.Equal(t, PlaceholderNA, daily.NakshatraYogam)
}

func TestGetDailyNotFound(t *testing.T) {
	svc := NewService(&mockPanchangamRepository{}, &mockScoresRepository{})

	_, err := svc.GetDaily(context.Background(), date(2025, time.March, 3))
	assert.ErrorIs(t, err, domain.ErrDayNotFound)
}

func TestGetSpecialDays(t *testing.T) {
	pournami := domain.PanchangamDay{
		Date:       date(2025, time.March, 14),
		IsPournami: true,
		Tithi:      parsedTithi("பௌர்ணமி", domain.PakshaShukla, date(2025, time.March, 14)),
	}
	ashtami := domain.PanchangamDay{
		Date:      date(2025, time.March, 22),
		IsAshtami: true,
		Tithi:     parsedTithi("அஷ்டமி", domain.PakshaKrishna, date(2025, time.March, 22)),
	}
	normal := domain.PanchangamDay{Date: date(2025, time.March, 15)}
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{pournami, ashtami, normal}}
	svc := NewService(repo, &mockScoresRepository{})

	// Default category lists every flagged day, skipping normal days.
	out, err := svc.GetSpecialDays(context.Background(), SpecialDaysRequest{
		Year: 2025, Month: time.March,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "பௌர்ணமி", out[0].Name)

	// Category filter.
	out, err = svc.GetSpecialDays(context.Background(), SpecialDaysRequest{
		Year: 2025, Month: time.March, Category: domain.CategoryAshtami,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "அஷ்டமி", out[0].Name)

	// Paksham filter on top of the category filter.
	out, err = svc.GetSpecialDays(context.Background(), SpecialDaysRequest{
		Year: 2025, Month: time.March, Paksham: PakshamKrishna,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Day.IsAshtami)
}

func TestGetSpecialDaysInvalidYear(t *testing.T) {
	svc := NewService(&mockPanchangamRepository{}, &mockScoresRepository{})

	_, err := svc.GetSpecialDays(context.Background(), SpecialDaysRequest{Year: 123})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestGetRSForecast(t *testing.T) {
	from := date(2025, time.March, 1)
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{
		{Date: date(2025, time.March, 2), MainNakshatra: "Rohini"},
		{Date: date(2025, time.March, 5), MainNakshatra: "Chitra"},
		{Date: date(2025, time.March, 9), MainNakshatra: "சுவாதி"},
	}}
	svc := NewService(repo, &mockScoresRepository{})

	out, err := svc.GetRSForecast(context.Background(), RSForecastRequest{From: from})
	require.NoError(t, err)
	require.Len(t, out, 2, "non-RS days are excluded")
	assert.Equal(t, "Chitra", out[0].NakshatraEnglish)
	assert.Equal(t, "Swati", out[1].NakshatraEnglish)
	assert.Equal(t, "Sunday", out[1].DayOfWeek)

	// Filter by an alternate Latin spelling matches the Tamil row.
	out, err = svc.GetRSForecast(context.Background(), RSForecastRequest{
		From: from, Nakshatra: "Swathi",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "சுவாதி", out[0].NakshatraTamil)

	_, err = svc.GetRSForecast(context.Background(), RSForecastRequest{
		From: from, Nakshatra: "NotAStar",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownNakshatra)
}

func TestGetMoonPhases(t *testing.T) {
	repo := &mockPanchangamRepository{days: []domain.PanchangamDay{
		{
			Date:          date(2025, time.February, 2),
			MainNakshatra: "Chitra",
			Tithi:         parsedTithi("திரிதியை", domain.PakshaShukla, date(2025, time.February, 2)),
		},
	}}
	svc := NewService(repo, &mockScoresRepository{})

	out, err := svc.GetMoonPhases(context.Background(), 2025, time.February)
	require.NoError(t, err)
	require.Len(t, out, 28, "every calendar day appears in the grid")

	cell := out[1]
	assert.True(t, cell.HasPanchanga)
	assert.True(t, cell.Waxing)
	assert.False(t, cell.Waning)
	assert.True(t, cell.IsRSDay)
	assert.Equal(t, "திரிதியை", cell.TithiName)

	empty := out[0]
	assert.False(t, empty.HasPanchanga)
	assert.Equal(t, "-", empty.TithiName)
	assert.Equal(t, "-", empty.Paksha)
}

func TestGetMoonPhasesBackendError(t *testing.T) {
	repo := &mockPanchangamRepository{rangeErr: errors.New("timeout")}
	svc := NewService(repo, &mockScoresRepository{})

	_, err := svc.GetMoonPhases(context.Background(), 2025, time.February)
	assert.ErrorIs(t, err, domain.ErrBackendQuery)
}
