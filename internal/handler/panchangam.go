package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/panchangam"
)

// HandleGetDaily returns the enriched panchangam view for one date.
// GET /panchangam/daily?date=YYYY-MM-DD
func HandleGetDaily(svc panchangam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := GetDateQueryParam(r, w, "date")
		if !ok {
			return
		}

		daily, err := svc.GetDaily(r.Context(), date)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDailyFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug("Daily panchangam served",
			"date", date.Format(domain.DateFormat),
			"nakshatra", daily.NakshatraEnglish)

		respondJSON(w, http.StatusOK, daily)
	}
}

// SpecialDaysResponse wraps a special-days listing with its echo of the
// applied filters.
type SpecialDaysResponse struct {
	Year     int                     `json:"year"`
	Month    int                     `json:"month,omitempty"`
	Category string                  `json:"category"`
	Paksham  string                  `json:"paksham"`
	Days     []panchangam.SpecialDay `json:"days"`
}

// HandleGetSpecialDays lists flagged days for a year or month.
// GET /panchangam/special-days?year=2025&month=3&category=pournami&paksham=shukla
func HandleGetSpecialDays(svc panchangam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := GetOptionalIntQueryParam(r, w, "year", time.Now().UTC().Year())
		if !ok {
			return
		}
		month, ok := GetOptionalIntQueryParam(r, w, "month", 0)
		if !ok {
			return
		}

		req := panchangam.SpecialDaysRequest{
			Year:     year,
			Month:    time.Month(month),
			Category: domain.SpecialDayCategory(strings.ToLower(GetOptionalQueryParam(r, "category", string(domain.CategoryAll)))),
			Paksham:  strings.ToLower(GetOptionalQueryParam(r, "paksham", panchangam.PakshamAll)),
		}

		days, err := svc.GetSpecialDays(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSpecialDaysFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SpecialDaysResponse{
			Year:     req.Year,
			Month:    int(req.Month),
			Category: string(req.Category),
			Paksham:  req.Paksham,
			Days:     days,
		})
	}
}

// RSForecastResponse wraps the upcoming RS Nakshatra days.
type RSForecastResponse struct {
	From      string                     `json:"from"`
	Days      int                        `json:"days"`
	Nakshatra string                     `json:"nakshatra,omitempty"`
	Matches   []panchangam.RSForecastDay `json:"matches"`
}

// HandleGetRSForecast lists upcoming RS Nakshatra days.
// GET /panchangam/rs-forecast?days=30&nakshatra=Swati
func HandleGetRSForecast(svc panchangam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := GetOptionalIntQueryParam(r, w, "days", 0)
		if !ok {
			return
		}

		req := panchangam.RSForecastRequest{
			From:      time.Now().UTC().Truncate(24 * time.Hour),
			Days:      days,
			Nakshatra: GetOptionalQueryParam(r, "nakshatra", ""),
		}
		if raw := r.URL.Query().Get("from"); raw != "" {
			from, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				http.Error(w, "Invalid from parameter, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			req.From = from
		}

		matches, err := svc.GetRSForecast(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetForecastFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, RSForecastResponse{
			From:      req.From.Format(domain.DateFormat),
			Days:      len(matches),
			Nakshatra: req.Nakshatra,
			Matches:   matches,
		})
	}
}

// MoonPhasesResponse is the month grid of moon phase cells.
type MoonPhasesResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Grid  []panchangam.MoonDay `json:"grid"`
}

// HandleGetMoonPhases returns the moon-phase grid for one month.
// GET /panchangam/moon-phases?year=2025&month=3
func HandleGetMoonPhases(svc panchangam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		year, ok := GetOptionalIntQueryParam(r, w, "year", now.Year())
		if !ok {
			return
		}
		month, ok := GetOptionalIntQueryParam(r, w, "month", int(now.Month()))
		if !ok {
			return
		}

		grid, err := svc.GetMoonPhases(r.Context(), year, time.Month(month))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMoonPhasesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, MoonPhasesResponse{Year: year, Month: month, Grid: grid})
	}
}
