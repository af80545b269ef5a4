package handler

import (
	"net/http"
	"strings"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/ics"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
	"github.com/tamilpanchangam/panchangam/internal/personal"
)

// HandleGetDashboard builds the personal dashboard for a birth star.
// GET /personal/dashboard?nakshatra=Swati&period=week
func HandleGetDashboard(svc personal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		birthNakshatra, ok := GetQueryParam(r, w, "nakshatra")
		if !ok {
			return
		}
		period := domain.DashboardPeriod(strings.ToLower(GetOptionalQueryParam(r, "period", string(domain.PeriodMonth))))

		dashboard, err := svc.GetDashboard(r.Context(), birthNakshatra, period)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDashboardFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Dashboard built",
			"nakshatra", dashboard.NakshatraEnglish,
			"period", period,
			"scored_days", len(dashboard.Scores))

		respondJSON(w, http.StatusOK, dashboard)
	}
}

// HandleGetCharacteristics returns the traditional characteristics of a
// birth star.
// GET /personal/characteristics?nakshatra=Swati
func HandleGetCharacteristics(svc personal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		birthNakshatra, ok := GetQueryParam(r, w, "nakshatra")
		if !ok {
			return
		}

		info, err := svc.GetCharacteristics(r.Context(), birthNakshatra)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCharacteristicsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, info)
	}
}

// PersonalExportRequest is the body for a personal-calendar export.
type PersonalExportRequest struct {
	Nakshatra string       `json:"nakshatra" validate:"required,nakshatra"`
	Period    string       `json:"period" validate:"omitempty,period"`
	Platform  ics.Platform `json:"platform"`
}

// HandlePersonalExport builds an ICS calendar from a birth star's favorable
// and Chandrashtama days and plans its delivery.
// POST /personal/export
func HandlePersonalExport(svc personal.Service, builder *ics.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PersonalExportRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Personal export"); err != nil {
			return
		}

		period := domain.DashboardPeriod(strings.ToLower(req.Period))
		if req.Period == "" {
			period = domain.PeriodMonth
		}

		dashboard, err := svc.GetDashboard(r.Context(), req.Nakshatra, period)
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}

		events, err := personal.ExportEvents(dashboard)
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}

		document := builder.BuildDocument(personal.ExportCalendarName(dashboard.NakshatraEnglish), events)
		filename := ics.Filename(personal.ExportFilenameContext, dashboard.NakshatraEnglish, nil)
		plan := ics.PlanDelivery(req.Platform, filename, events, document)

		metrics.CalendarExports.WithLabelValues(metrics.ExportKindPersonal).Inc()
		logger.FromContext(r.Context()).Info("Personal calendar export planned",
			"nakshatra", dashboard.NakshatraEnglish,
			"events", len(events),
			"mode", plan.Mode)

		writeExport(w, plan, document, len(events))
	}
}
