package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Validation failures map to 400, missing data to 404, and
// backend failures to 502 so callers can tell a bad request from an
// upstream outage.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrDayNotFound):
		return http.StatusNotFound, ErrMsgDayNotFoundError
	case errors.Is(err, domain.ErrNoDataInRange):
		return http.StatusNotFound, ErrMsgNoDataInRangeError
	case errors.Is(err, domain.ErrUnknownNakshatra):
		return http.StatusNotFound, ErrMsgUnknownNakshatraError
	case errors.Is(err, domain.ErrPreferenceNotFound):
		return http.StatusNotFound, ErrMsgPreferenceNotFoundErr
	case errors.Is(err, domain.ErrInvalidActivity):
		return http.StatusBadRequest, ErrMsgInvalidActivityError
	case errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest, ErrMsgInvalidDateRangeError
	case errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest, ErrMsgInvalidPeriodError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrNothingToExport):
		return http.StatusNotFound, ErrMsgNothingToExportError
	case errors.Is(err, domain.ErrBackendQuery):
		return http.StatusBadGateway, ErrMsgBackendUnavailableErr
	case errors.Is(err, domain.ErrScoreRPC):
		return http.StatusBadGateway, ErrMsgBackendUnavailableErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
