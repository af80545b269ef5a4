package panchangam

// ============================================================================
// Display Placeholders
// ============================================================================

// PlaceholderNA substitutes for a yogam the backend could not provide.
const PlaceholderNA = "N/A"

// ============================================================================
// RS Nakshatra Advisory
// ============================================================================

// RSAdvisoryShortDesc is the Tamil caution text shown on RS Nakshatra days.
const RSAdvisoryShortDesc = "தவிர்க்க வேண்டியவை: மருத்துவ சிகிச்சை, பயணம், நிதி பரிவர்த்தனைகள்"

// ============================================================================
// Paksham Filter Keys
// ============================================================================

const (
	PakshamAll     = "all"
	PakshamShukla  = "shukla"
	PakshamKrishna = "krishna"
)

// ============================================================================
// RS Forecast Defaults
// ============================================================================

// DefaultForecastDays is the forward horizon when the request does not name
// one.
const DefaultForecastDays = 30

// MaxForecastDays caps the forward horizon.
const MaxForecastDays = 90
