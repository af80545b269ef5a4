package auspicious

// ============================================================================
// Score Weights
// ============================================================================

// BaseScore is assumed when a day carries no backend cosmic score.
const BaseScore = 5.0

// RSNakshatraPenalty is subtracted on RS Nakshatra days for every activity.
const RSNakshatraPenalty = 3.0

// PournamiBonus is added on full-moon days.
const PournamiBonus = 0.5

// MythraMuhurthamBonus is added on Mythra Muhurtham days for every activity.
const MythraMuhurthamBonus = 2.0

// MedicalRSPenalty is the extra medical penalty on RS Nakshatra days.
const MedicalRSPenalty = 1.0

// TravelSundayBonus is the travel bonus on Sundays.
const TravelSundayBonus = 0.5

// FinancialThuFriBonus is the financial bonus on Thursdays and Fridays.
const FinancialThuFriBonus = 0.7

// FinancialRSPenalty is the extra financial penalty on RS Nakshatra days.
const FinancialRSPenalty = 1.0

// FinancialMythraBonus is the extra financial bonus on Mythra Muhurtham days.
const FinancialMythraBonus = 1.0

// ============================================================================
// Vaara Column Values
// ============================================================================

// The vaara column stores weekday names in Tamil or English depending on the
// ingestion run, so both spellings are matched.
const (
	VaaraSundayTamil   = "ஞாயிற்றுக்கிழமை"
	VaaraThursdayTamil = "வியாழக்கிழமை"
	VaaraFridayTamil   = "வெள்ளிக்கிழமை"
)

// ============================================================================
// User-Facing Note Strings
// ============================================================================

const (
	NoteRSNakshatra         = "RS Nakshatra day - unfavorable for most activities"
	NotePournami            = "Full Moon day (பௌர்ணமி)"
	NoteMythraMuhurtham     = "Mythra Muhurtham - Making even small loan payments during this period can accelerate your loan closure. Consider scheduling a payment during this auspicious time."
	NoteMedicalRS           = "Avoid medical procedures on RS Nakshatra days"
	NoteTravelChandrashtama = "Check if your birth star is in Chandrashtama today"
	NoteFinancialThuFri     = "Thursday/Friday favorable for financial activities"
	NoteFinancialRS         = "Avoid financial transactions on RS Nakshatra days"
)

// ============================================================================
// Best-Time Window Strings
// ============================================================================

const (
	// FallbackRahuKalam and FallbackYamagandam substitute for missing
	// window columns inside the best-time templates.
	FallbackRahuKalam  = "Rahu Kalam"
	FallbackYamagandam = "Yamagandam"

	// BestTimeFinancialFallback is used when the day has no Abhijit
	// Muhurta window.
	BestTimeFinancialFallback = "Midday (Abhijit Muhurta)"

	// BestTimeDefault is the window for unrecognized activities.
	BestTimeDefault = "Morning hours preferred"
)

// ============================================================================
// Sorting
// ============================================================================

const (
	SortByDate  = "date"
	SortByScore = "score"
)

// ============================================================================
// Export Strings
// ============================================================================

const (
	// ExportCalendarNamePrefix precedes the title-cased activity in the
	// X-WR-CALNAME header.
	ExportCalendarNamePrefix = "Auspicious Times for "

	// ExportFilenameContext is the <context> segment of search-export
	// filenames.
	ExportFilenameContext = "auspicious-times"
)

// Emoji markers for export event titles.
const (
	EmojiMedical         = "🏥"
	EmojiTravel          = "✈️"
	EmojiFinancial       = "💰"
	EmojiGenericActivity = "📅"

	EmojiHighlyFavorable = "🟢"
	EmojiFavorable       = "🟡"
	EmojiNeutral         = "⚪"
)
