package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Data availability errors
	ErrMsgDayNotFound   = "no panchangam data for date"
	ErrMsgNoDataInRange = "no panchangam data in range"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidActivity  = "unknown activity type"
	ErrMsgInvalidDateRange = "invalid date range"
	ErrMsgInvalidPeriod    = "unknown dashboard period"

	// Nakshatra errors
	ErrMsgUnknownNakshatra = "unknown nakshatra"

	// Preference errors
	ErrMsgPreferenceNotFound = "preference not found"

	// Export errors
	ErrMsgNothingToExport = "no events to export"

	// Backend errors
	ErrMsgBackendQuery = "backend query failed"
	ErrMsgScoreRPC     = "personal score call failed"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrDayNotFound   = errors.New(ErrMsgDayNotFound)
	ErrNoDataInRange = errors.New(ErrMsgNoDataInRange)

	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidActivity  = errors.New(ErrMsgInvalidActivity)
	ErrInvalidDateRange = errors.New(ErrMsgInvalidDateRange)
	ErrInvalidPeriod    = errors.New(ErrMsgInvalidPeriod)

	ErrUnknownNakshatra = errors.New(ErrMsgUnknownNakshatra)

	ErrPreferenceNotFound = errors.New(ErrMsgPreferenceNotFound)

	ErrNothingToExport = errors.New(ErrMsgNothingToExport)

	ErrBackendQuery = errors.New(ErrMsgBackendQuery)
	ErrScoreRPC     = errors.New(ErrMsgScoreRPC)
)
