package personal

import "time"

// ============================================================================
// Score Fan-Out
// ============================================================================

// DefaultScoreWorkers bounds the concurrent calculate_personal_score calls
// during a dashboard build. A year-long period touches 365 days; running
// them all at once would exhaust the connection pool.
const DefaultScoreWorkers = 8

// ============================================================================
// Favorable Day Selection
// ============================================================================

// FavorableScoreThreshold is the minimum personal score for a day to count
// as favorable.
const FavorableScoreThreshold = 7.0

// TopFavorableCount caps the favorable-days list at the best five.
const TopFavorableCount = 5

// ============================================================================
// Score Cache
// ============================================================================

// DefaultScoreCacheSize is the maximum number of cached (date, nakshatra)
// score results.
const DefaultScoreCacheSize = 4096

// DefaultScoreCacheTTL expires cached scores; backend panchangam rows only
// change on re-ingestion, so a few hours is safe.
const DefaultScoreCacheTTL = 6 * time.Hour

// ============================================================================
// Calendar Export Strings
// ============================================================================

const (
	// ExportCalendarNamePrefix precedes the birth star in X-WR-CALNAME.
	ExportCalendarNamePrefix = "Personal Nakshatra Calendar for "

	// ExportFilenameContext is the <context> segment of personal export
	// filenames.
	ExportFilenameContext = "personal-nakshatra-calendar"

	// UIDPrefixFavorable and UIDPrefixChandrashtama tag exported event UIDs
	// by kind.
	UIDPrefixFavorable     = "favorable"
	UIDPrefixChandrashtama = "chandrashtama"

	// ChandrashtamaEventTitle is fixed; favorable titles embed the score.
	ChandrashtamaEventTitle = "⚠️ Chandrashtama Day - Caution"

	// ReminderFavorable and ReminderChandrashtama are the VALARM texts.
	ReminderFavorable     = "Reminder: This is a favorable day for you!"
	ReminderChandrashtama = "Caution: This is a Chandrashtama day for you!"
)
