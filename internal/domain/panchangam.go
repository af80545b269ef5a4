package domain

import "time"

// DateFormat is the wire format for calendar dates throughout the API.
const DateFormat = "2006-01-02"

// PanchangamDay is a single day's almanac record from the backend
// daily_panchangam table. All fields are backend-owned and read-only here;
// MainNakshatra arrives as a raw string in English or Tamil, possibly an
// alternate spelling.
type PanchangamDay struct {
	Date          time.Time `json:"date"`
	MainNakshatra string    `json:"main_nakshatra"`
	Vaara         string    `json:"vaara"` // weekday name, English or Tamil
	Tithi         TithiList `json:"tithi"`

	// Named lunar-calendar day flags.
	IsPournami        bool `json:"is_pournami"`
	IsAmavasai        bool `json:"is_amavasai"`
	IsEkadashi        bool `json:"is_ekadashi"`
	IsDwadashi        bool `json:"is_dwadashi"`
	IsAshtami         bool `json:"is_ashtami"`
	IsNavami          bool `json:"is_navami"`
	IsTrayodashi      bool `json:"is_trayodashi"`
	IsSashti          bool `json:"is_sashti"`
	IsMythraMuhurtham bool `json:"is_mythra_muhurtham"`
	IsRSNakshatra     bool `json:"is_rs_nakshatra"`

	// CosmicScore is a backend-computed 0-10 rating. Nil means absent;
	// scoring falls back to the neutral base.
	CosmicScore *float64 `json:"cosmic_score,omitempty"`

	// Named daily time windows (free-form strings such as "09:00 - 10:30").
	RahuKalam      string `json:"rahu_kalam,omitempty"`
	Yamagandam     string `json:"yamagandam,omitempty"`
	Kuligai        string `json:"kuligai,omitempty"`
	AbhijitMuhurta string `json:"abhijit_muhurta,omitempty"`

	// ChandrashtamaFor lists birth stars in Chandrashtama on this day.
	ChandrashtamaFor []string `json:"chandrashtama_for,omitempty"`
}

// DateString returns the day's date in ISO 8601 (YYYY-MM-DD) form.
func (d *PanchangamDay) DateString() string {
	return d.Date.Format(DateFormat)
}

// Weekday returns the English weekday derived from the date. Vaara may carry
// a Tamil name; scoring rules key on the calendar weekday instead.
func (d *PanchangamDay) Weekday() time.Weekday {
	return d.Date.Weekday()
}

// SpecialDayName returns the Tamil name of the day's special observance,
// checked in display priority order, or "Normal Day".
func (d *PanchangamDay) SpecialDayName() string {
	switch {
	case d.IsPournami:
		return "பௌர்ணமி"
	case d.IsAmavasai:
		return "அமாவாசை"
	case d.IsEkadashi:
		return "ஏகாதசி"
	case d.IsDwadashi:
		return "துவாதசி"
	case d.IsAshtami:
		return "அஷ்டமி"
	case d.IsNavami:
		return "நவமி"
	case d.IsTrayodashi:
		return "திரயோதசி"
	case d.IsSashti:
		return "சஷ்டி"
	default:
		return "Normal Day"
	}
}

// HasAnySpecialFlag reports whether any named day-type flag is set,
// including the RS Nakshatra marker. Used by the special-days listing when
// no category filter is applied.
func (d *PanchangamDay) HasAnySpecialFlag() bool {
	return d.IsPournami || d.IsAmavasai || d.IsEkadashi || d.IsDwadashi ||
		d.IsAshtami || d.IsNavami || d.IsTrayodashi || d.IsSashti ||
		d.IsRSNakshatra
}

// MoonPhase is the waxing/waning state derived from the day's tithi list.
type MoonPhase struct {
	IsValarPirai bool `json:"is_valar_pirai"` // waxing (Shukla paksha)
	IsTheiPirai  bool `json:"is_thei_pirai"`  // waning (Krishna paksha)
}

// SpecialDayCategory identifies a filterable day type on the special-days
// listing. Values double as the API query-parameter keys.
type SpecialDayCategory string

const (
	CategoryAll         SpecialDayCategory = "all"
	CategoryPournami    SpecialDayCategory = "pournami"
	CategoryAmavasai    SpecialDayCategory = "amavasai"
	CategoryEkadashi    SpecialDayCategory = "ekadashi"
	CategoryDwadashi    SpecialDayCategory = "dwadashi"
	CategoryAshtami     SpecialDayCategory = "ashtami"
	CategoryNavami      SpecialDayCategory = "navami"
	CategoryTrayodashi  SpecialDayCategory = "trayodashi"
	CategorySashti      SpecialDayCategory = "sashti"
	CategoryRSNakshatra SpecialDayCategory = "rs-nakshatra"
)

// MatchesCategory reports whether the day carries the flag named by c.
// Unknown categories match nothing.
func (d *PanchangamDay) MatchesCategory(c SpecialDayCategory) bool {
	switch c {
	case CategoryAll:
		return d.HasAnySpecialFlag()
	case CategoryPournami:
		return d.IsPournami
	case CategoryAmavasai:
		return d.IsAmavasai
	case CategoryEkadashi:
		return d.IsEkadashi
	case CategoryDwadashi:
		return d.IsDwadashi
	case CategoryAshtami:
		return d.IsAshtami
	case CategoryNavami:
		return d.IsNavami
	case CategoryTrayodashi:
		return d.IsTrayodashi
	case CategorySashti:
		return d.IsSashti
	case CategoryRSNakshatra:
		return d.IsRSNakshatra
	default:
		return false
	}
}

// RSAdvisory is the caution block shown when the day's star is an RS
// Nakshatra. The short description is a fixed Tamil advisory text.
type RSAdvisory struct {
	IsRSNakshatra      bool   `json:"is_rs_nakshatra"`
	AvoidMedical       bool   `json:"avoid_medical"`
	AvoidTravel        bool   `json:"avoid_travel"`
	AvoidFinancial     bool   `json:"avoid_financial"`
	ShortDescription   string `json:"rs_nakshatra_short_desc"`
	NakshatraName      string `json:"nakshatra_name"`
	NakshatraNameTamil string `json:"nakshatra_name_tamil"`
}

// NakshatraInfo describes a birth star's traditional characteristics, as
// stored in the backend nakshatra_characteristics table.
type NakshatraInfo struct {
	EnglishName string   `json:"english_name"`
	TamilName   string   `json:"tamil_name,omitempty"`
	Deity       string   `json:"deity,omitempty"`
	Symbol      string   `json:"symbol,omitempty"`
	Ruler       string   `json:"ruler,omitempty"`
	Element     string   `json:"element,omitempty"`
	Qualities   []string `json:"qualities,omitempty"`
	Favorable   []string `json:"favorable,omitempty"`
	Unfavorable []string `json:"unfavorable,omitempty"`
}
