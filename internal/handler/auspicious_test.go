package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/ics"
)

func scoredDay(date time.Time, score float64) domain.ScoredDay {
	return domain.ScoredDay{
		Date:             date,
		Nakshatra:        "அஸ்தம்",
		NakshatraEnglish: "Hasta",
		DayOfWeek:        date.Weekday().String(),
		Score:            score,
		Favorability:     domain.FavorabilityForScore(score),
		BestTimeRange:    "06:00 - 07:30",
	}
}

func TestHandleAuspiciousSearch(t *testing.T) {
	InitValidator()

	day := scoredDay(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), 8.7)

	tests := []struct {
		name           string
		requestBody    interface{}
		svc            *mockAuspiciousService
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: AuspiciousSearchRequest{
				StartDate: "2025-03-01",
				EndDate:   "2025-03-31",
				Activity:  "financial",
			},
			svc:            &mockAuspiciousService{results: []domain.ScoredDay{day}},
			expectedStatus: http.StatusOK,
			expectedBody:   `"favorability":"highly_favorable"`,
		},
		{
			name: "Invalid Activity",
			requestBody: AuspiciousSearchRequest{
				StartDate: "2025-03-01",
				EndDate:   "2025-03-31",
				Activity:  "gardening",
			},
			svc:            &mockAuspiciousService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidActivityError,
		},
		{
			name: "Malformed Date",
			requestBody: AuspiciousSearchRequest{
				StartDate: "01/03/2025",
				EndDate:   "2025-03-31",
				Activity:  "medical",
			},
			svc:            &mockAuspiciousService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid date format",
		},
		{
			name: "No Data In Range",
			requestBody: AuspiciousSearchRequest{
				StartDate: "2030-01-01",
				EndDate:   "2030-01-31",
				Activity:  "travel",
			},
			svc:            &mockAuspiciousService{err: domain.ErrNoDataInRange},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgNoDataInRangeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/auspicious/search", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			HandleAuspiciousSearch(tt.svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleAuspiciousSearchForwardsOptions(t *testing.T) {
	InitValidator()
	svc := &mockAuspiciousService{results: []domain.ScoredDay{}}

	body, _ := json.Marshal(AuspiciousSearchRequest{
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
		Activity:   "Medical",
		MythraOnly: true,
		SortBy:     "score",
		SortDesc:   true,
	})
	req := httptest.NewRequest("POST", "/auspicious/search", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleAuspiciousSearch(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ActivityMedical, svc.lastReq.Activity)
	assert.True(t, svc.lastReq.OnlyMythraMuhurtham)
	assert.Equal(t, "score", svc.lastReq.SortBy)
	assert.True(t, svc.lastReq.SortDescending)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), svc.lastReq.Start)
}

func TestHandleAuspiciousExportDesktopDownload(t *testing.T) {
	InitValidator()

	day := scoredDay(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), 8.7)
	svc := &mockAuspiciousService{results: []domain.ScoredDay{day}}

	body, _ := json.Marshal(AuspiciousExportRequest{
		AuspiciousSearchRequest: AuspiciousSearchRequest{
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
			Activity:  "financial",
		},
	})
	req := httptest.NewRequest("POST", "/auspicious/export", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleAuspiciousExport(svc, ics.NewBuilder()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ics.MIMEType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "auspicious-times-financial-times.ics")
	assert.True(t, strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR"))
	assert.Contains(t, w.Body.String(), "X-WR-CALNAME:Auspicious Times for Financial")
}

func TestHandleAuspiciousExportIOSEnvelope(t *testing.T) {
	InitValidator()

	day := scoredDay(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), 8.7)
	svc := &mockAuspiciousService{results: []domain.ScoredDay{day}}

	body, _ := json.Marshal(AuspiciousExportRequest{
		AuspiciousSearchRequest: AuspiciousSearchRequest{
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
			Activity:  "financial",
		},
		Platform: ics.Platform{IsIOS: true, CanShareFiles: true},
	})
	req := httptest.NewRequest("POST", "/auspicious/export", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleAuspiciousExport(svc, ics.NewBuilder()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ics.ModeShareSheet, resp.Plan.Mode)
	assert.Equal(t, 1, resp.EventCount)
	assert.Contains(t, resp.Document, "BEGIN:VEVENT")
}

func TestHandleAuspiciousExportNothingToExport(t *testing.T) {
	InitValidator()

	// Unfavorable days survive the search but are filtered from the export.
	day := scoredDay(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 2.0)
	svc := &mockAuspiciousService{results: []domain.ScoredDay{day}}

	body, _ := json.Marshal(AuspiciousExportRequest{
		AuspiciousSearchRequest: AuspiciousSearchRequest{
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
			Activity:  "medical",
		},
	})
	req := httptest.NewRequest("POST", "/auspicious/export", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleAuspiciousExport(svc, ics.NewBuilder()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNothingToExportError)
}
