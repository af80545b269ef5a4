package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/panchangam"
)

func TestHandleGetDaily(t *testing.T) {
	day := &domain.PanchangamDay{
		Date:          time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		MainNakshatra: "ரோகிணி",
	}
	daily := &panchangam.DailyPanchangam{
		Day:              day,
		NakshatraEnglish: "Rohini",
		NakshatraTamil:   "ரோகிணி",
		NakshatraYogam:   "சித்த யோகம்",
		SpecialDayName:   "Normal Day",
	}

	tests := []struct {
		name           string
		query          string
		svc            *mockPanchangamService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			query:          "?date=2025-03-14",
			svc:            &mockPanchangamService{daily: daily},
			expectedStatus: http.StatusOK,
			expectedBody:   `"nakshatra_english":"Rohini"`,
		},
		{
			name:           "Missing Date",
			query:          "",
			svc:            &mockPanchangamService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing date query parameter",
		},
		{
			name:           "Malformed Date",
			query:          "?date=14-03-2025",
			svc:            &mockPanchangamService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid date parameter",
		},
		{
			name:           "Not Found",
			query:          "?date=1999-01-01",
			svc:            &mockPanchangamService{dailyErr: domain.ErrDayNotFound},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgDayNotFoundError,
		},
		{
			name:           "Backend Failure",
			query:          "?date=2025-03-14",
			svc:            &mockPanchangamService{dailyErr: domain.ErrBackendQuery},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   ErrMsgBackendUnavailableErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/panchangam/daily"+tt.query, nil)
			w := httptest.NewRecorder()

			HandleGetDaily(tt.svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetSpecialDaysAppliesFilters(t *testing.T) {
	svc := &mockPanchangamService{
		specialDays: []panchangam.SpecialDay{
			{Name: "பௌர்ணமி", TithiDisplay: "பௌர்ணமி"},
		},
	}

	req := httptest.NewRequest("GET", "/panchangam/special-days?year=2025&month=3&category=POURNAMI&paksham=shukla", nil)
	w := httptest.NewRecorder()

	HandleGetSpecialDays(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category":"pournami"`)
	assert.Contains(t, w.Body.String(), "பௌர்ணமி")

	assert.Equal(t, 2025, svc.lastSpecialReq.Year)
	assert.Equal(t, time.March, svc.lastSpecialReq.Month)
	assert.Equal(t, domain.CategoryPournami, svc.lastSpecialReq.Category)
	assert.Equal(t, panchangam.PakshamShukla, svc.lastSpecialReq.Paksham)
}

func TestHandleGetSpecialDaysDefaults(t *testing.T) {
	svc := &mockPanchangamService{}

	req := httptest.NewRequest("GET", "/panchangam/special-days?year=2025", nil)
	w := httptest.NewRecorder()

	HandleGetSpecialDays(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.CategoryAll, svc.lastSpecialReq.Category)
	assert.Equal(t, panchangam.PakshamAll, svc.lastSpecialReq.Paksham)
	assert.Equal(t, time.Month(0), svc.lastSpecialReq.Month)
}

func TestHandleGetSpecialDaysBadMonth(t *testing.T) {
	req := httptest.NewRequest("GET", "/panchangam/special-days?year=2025&month=abc", nil)
	w := httptest.NewRecorder()

	HandleGetSpecialDays(&mockPanchangamService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid month parameter")
}

func TestHandleGetRSForecast(t *testing.T) {
	svc := &mockPanchangamService{
		forecast: []panchangam.RSForecastDay{
			{
				Date:             time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
				DayOfWeek:        "Sunday",
				NakshatraEnglish: "Chitra",
				NakshatraTamil:   "சித்திரை",
			},
		},
	}

	req := httptest.NewRequest("GET", "/panchangam/rs-forecast?from=2025-03-01&days=30&nakshatra=Swati", nil)
	w := httptest.NewRecorder()

	HandleGetRSForecast(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nakshatra_english":"Chitra"`)
	assert.Contains(t, w.Body.String(), `"from":"2025-03-01"`)

	assert.Equal(t, "Swati", svc.lastForecastReq.Nakshatra)
	assert.Equal(t, 30, svc.lastForecastReq.Days)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), svc.lastForecastReq.From)
}

func TestHandleGetRSForecastUnknownStar(t *testing.T) {
	svc := &mockPanchangamService{forecastErr: domain.ErrUnknownNakshatra}

	req := httptest.NewRequest("GET", "/panchangam/rs-forecast?nakshatra=Nonexistent", nil)
	w := httptest.NewRecorder()

	HandleGetRSForecast(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnknownNakshatraError)
}

func TestHandleGetMoonPhases(t *testing.T) {
	svc := &mockPanchangamService{
		moonDays: []panchangam.MoonDay{
			{
				Date:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
				TithiName:    "திரிதியை",
				Paksha:       domain.PakshaShukla,
				Waxing:       true,
				HasPanchanga: true,
			},
		},
	}

	req := httptest.NewRequest("GET", "/panchangam/moon-phases?year=2025&month=2", nil)
	w := httptest.NewRecorder()

	HandleGetMoonPhases(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"year":2025`)
	assert.Contains(t, w.Body.String(), `"waxing":true`)
}
