package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/auspicious"
	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/ics"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
)

// AuspiciousSearchRequest is the body for an auspicious-time search.
type AuspiciousSearchRequest struct {
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Activity   string `json:"activity" validate:"required,activity"`
	MythraOnly bool   `json:"mythra_only"`
	SortBy     string `json:"sort_by" validate:"omitempty,oneof=date score"`
	SortDesc   bool   `json:"sort_desc"`
}

// AuspiciousSearchResponse lists the scored days for the requested range.
type AuspiciousSearchResponse struct {
	Activity string             `json:"activity"`
	Count    int                `json:"count"`
	Results  []domain.ScoredDay `json:"results"`
}

// searchRequest converts the wire request into the service request. Dates
// are validated by tags before this runs, so parse errors cannot occur.
func (r AuspiciousSearchRequest) searchRequest() auspicious.SearchRequest {
	start, _ := time.Parse(domain.DateFormat, r.StartDate)
	end, _ := time.Parse(domain.DateFormat, r.EndDate)
	return auspicious.SearchRequest{
		Start:               start,
		End:                 end,
		Activity:            domain.Activity(strings.ToLower(r.Activity)),
		OnlyMythraMuhurtham: r.MythraOnly,
		SortBy:              r.SortBy,
		SortDescending:      r.SortDesc,
	}
}

// HandleAuspiciousSearch scores a date range for an activity.
// POST /auspicious/search
func HandleAuspiciousSearch(svc auspicious.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuspiciousSearchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Auspicious search"); err != nil {
			return
		}

		results, err := svc.Search(r.Context(), req.searchRequest())
		if err != nil {
			respondServiceError(w, r, ErrMsgSearchFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Auspicious search completed",
			"activity", req.Activity,
			"results", len(results))

		respondJSON(w, http.StatusOK, AuspiciousSearchResponse{
			Activity: strings.ToLower(req.Activity),
			Count:    len(results),
			Results:  results,
		})
	}
}

// AuspiciousExportRequest is the body for a search-result calendar export.
type AuspiciousExportRequest struct {
	AuspiciousSearchRequest
	Platform ics.Platform `json:"platform"`
}

// ExportResponse carries the delivery plan and the assembled document for
// every non-download delivery mode.
type ExportResponse struct {
	Plan       ics.DeliveryPlan `json:"plan"`
	EventCount int              `json:"event_count"`
	Document   string           `json:"document"`
}

// HandleAuspiciousExport builds an ICS calendar from the favorable days of
// a search and plans its delivery. Download mode streams the file directly;
// other modes return the plan and document for the client to execute.
// POST /auspicious/export
func HandleAuspiciousExport(svc auspicious.Service, builder *ics.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuspiciousExportRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Auspicious export"); err != nil {
			return
		}

		activity := domain.Activity(strings.ToLower(req.Activity))
		results, err := svc.Search(r.Context(), req.searchRequest())
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}

		events, err := auspicious.ExportEvents(results, activity)
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}

		document := builder.BuildDocument(auspicious.ExportCalendarName(activity), events)
		filename := ics.Filename(auspicious.ExportFilenameContext, string(activity), nil)
		plan := ics.PlanDelivery(req.Platform, filename, events, document)

		metrics.CalendarExports.WithLabelValues(metrics.ExportKindAuspicious).Inc()
		logger.FromContext(r.Context()).Info("Calendar export planned",
			"activity", activity,
			"events", len(events),
			"mode", plan.Mode)

		writeExport(w, plan, document, len(events))
	}
}

// writeExport serves a download-mode plan as a file attachment and every
// other mode as a JSON envelope.
func writeExport(w http.ResponseWriter, plan ics.DeliveryPlan, document string, eventCount int) {
	if plan.Mode == ics.ModeDownload {
		w.Header().Set("Content-Type", ics.MIMEType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+plan.Filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(document))
		return
	}

	respondJSON(w, http.StatusOK, ExportResponse{
		Plan:       plan,
		EventCount: eventCount,
		Document:   document,
	})
}
