package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidDateParam  = "Invalid %s parameter, expected YYYY-MM-DD"
	ErrMsgInvalidIntParam   = "Invalid %s parameter"

	// Panchangam error messages
	ErrMsgGetDailyFailed       = "Failed to retrieve daily panchangam"
	ErrMsgGetSpecialDaysFailed = "Failed to retrieve special days"
	ErrMsgGetForecastFailed    = "Failed to retrieve forecast"
	ErrMsgGetMoonPhasesFailed  = "Failed to retrieve moon phases"

	// Search and export error messages
	ErrMsgSearchFailed = "Failed to search auspicious times"
	ErrMsgExportFailed = "Failed to export calendar"

	// Dashboard error messages
	ErrMsgGetDashboardFailed       = "Failed to build dashboard"
	ErrMsgGetCharacteristicsFailed = "Failed to retrieve nakshatra characteristics"

	// Preference error messages
	ErrMsgGetPreferenceFailed    = "Failed to retrieve preference"
	ErrMsgSetPreferenceFailed    = "Failed to save preference"
	ErrMsgDeletePreferenceFailed = "Failed to delete preference"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgDayNotFoundError      = "No panchangam data for that date"
	ErrMsgNoDataInRangeError    = "No panchangam data in that date range"
	ErrMsgUnknownNakshatraError = "Unknown nakshatra name"
	ErrMsgInvalidActivityError  = "Unknown activity type. Valid options: medical, travel, financial"
	ErrMsgInvalidDateRangeError = "Start date must not be after end date"
	ErrMsgInvalidPeriodError    = "Unknown period. Valid options: week, month, year"
	ErrMsgPreferenceNotFoundErr = "Preference not found"
	ErrMsgNothingToExportError  = "No favorable days to export in that range"
	ErrMsgBackendUnavailableErr = "Panchangam backend is temporarily unavailable. Please try again later."
)

// Success messages for API responses
const (
	MsgPreferenceSavedSuccess   = "Preference saved successfully"
	MsgPreferenceDeletedSuccess = "Preference deleted successfully"
)
