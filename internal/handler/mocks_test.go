package handler

import (
	"context"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/auspicious"
	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/panchangam"
	"github.com/tamilpanchangam/panchangam/internal/personal"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// mockPanchangamService stubs panchangam.Service with canned responses.
type mockPanchangamService struct {
	daily       *panchangam.DailyPanchangam
	dailyErr    error
	specialDays []panchangam.SpecialDay
	specialErr  error
	forecast    []panchangam.RSForecastDay
	forecastErr error
	moonDays    []panchangam.MoonDay
	moonErr     error

	lastSpecialReq  panchangam.SpecialDaysRequest
	lastForecastReq panchangam.RSForecastRequest
}

func (m *mockPanchangamService) GetDaily(ctx context.Context, date time.Time) (*panchangam.DailyPanchangam, error) {
	return m.daily, m.dailyErr
}

func (m *mockPanchangamService) GetSpecialDays(ctx context.Context, req panchangam.SpecialDaysRequest) ([]panchangam.SpecialDay, error) {
	m.lastSpecialReq = req
	return m.specialDays, m.specialErr
}

func (m *mockPanchangamService) GetRSForecast(ctx context.Context, req panchangam.RSForecastRequest) ([]panchangam.RSForecastDay, error) {
	m.lastForecastReq = req
	return m.forecast, m.forecastErr
}

func (m *mockPanchangamService) GetMoonPhases(ctx context.Context, year int, month time.Month) ([]panchangam.MoonDay, error) {
	return m.moonDays, m.moonErr
}

// mockAuspiciousService stubs auspicious.Service.
type mockAuspiciousService struct {
	results []domain.ScoredDay
	err     error

	lastReq auspicious.SearchRequest
}

func (m *mockAuspiciousService) Search(ctx context.Context, req auspicious.SearchRequest) ([]domain.ScoredDay, error) {
	m.lastReq = req
	return m.results, m.err
}

func (m *mockAuspiciousService) Evaluate(day *domain.PanchangamDay, activity domain.Activity) domain.ScoredDay {
	return domain.ScoredDay{}
}

// mockPersonalService stubs personal.Service.
type mockPersonalService struct {
	dashboard *personal.Dashboard
	dashErr   error
	info      *domain.NakshatraInfo
	infoErr   error

	lastPeriod domain.DashboardPeriod
}

func (m *mockPersonalService) GetDashboard(ctx context.Context, birthNakshatra string, period domain.DashboardPeriod) (*personal.Dashboard, error) {
	m.lastPeriod = period
	return m.dashboard, m.dashErr
}

func (m *mockPersonalService) GetCharacteristics(ctx context.Context, birthNakshatra string) (*domain.NakshatraInfo, error) {
	return m.info, m.infoErr
}

// mockPreferencesRepo is an in-memory repository.Preferences.
type mockPreferencesRepo struct {
	prefs  map[string]map[string]string
	getErr error
	setErr error
	delErr error
}

func newMockPreferencesRepo() *mockPreferencesRepo {
	return &mockPreferencesRepo{prefs: make(map[string]map[string]string)}
}

func (m *mockPreferencesRepo) Get(ctx context.Context, userID, key string) (*repository.Preference, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	value, ok := m.prefs[userID][key]
	if !ok {
		return nil, domain.ErrPreferenceNotFound
	}
	return &repository.Preference{UserID: userID, Key: key, Value: value}, nil
}

func (m *mockPreferencesRepo) GetAll(ctx context.Context, userID string) ([]repository.Preference, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([]repository.Preference, 0, len(m.prefs[userID]))
	for k, v := range m.prefs[userID] {
		out = append(out, repository.Preference{UserID: userID, Key: k, Value: v})
	}
	return out, nil
}

func (m *mockPreferencesRepo) Set(ctx context.Context, userID, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.prefs[userID] == nil {
		m.prefs[userID] = make(map[string]string)
	}
	m.prefs[userID][key] = value
	return nil
}

func (m *mockPreferencesRepo) Delete(ctx context.Context, userID, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.prefs[userID], key)
	return nil
}
