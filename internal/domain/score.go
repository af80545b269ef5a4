package domain

import "time"

// Activity identifies the activity type an auspicious-time search is scored
// for.
type Activity string

const (
	ActivityMedical   Activity = "medical"
	ActivityTravel    Activity = "travel"
	ActivityFinancial Activity = "financial"
)

// Valid reports whether a is one of the recognized activity types.
func (a Activity) Valid() bool {
	switch a {
	case ActivityMedical, ActivityTravel, ActivityFinancial:
		return true
	}
	return false
}

// Favorability is the coarse label derived from a day's numeric score.
type Favorability string

const (
	HighlyFavorable Favorability = "highly_favorable"
	Favorable       Favorability = "favorable"
	Neutral         Favorability = "neutral"
	Unfavorable     Favorability = "unfavorable"
)

// FavorabilityForScore maps a numeric score to its label. The branch order
// is load-bearing: the <=4 check runs only after the >=6 check fails, so
// exactly 4 is Unfavorable while 4.5 lands on Neutral.
func FavorabilityForScore(score float64) Favorability {
	switch {
	case score >= 7.5:
		return HighlyFavorable
	case score >= 6:
		return Favorable
	case score <= 4:
		return Unfavorable
	default:
		return Neutral
	}
}

// Exportable reports whether days with this label are included in calendar
// exports of favorable times.
func (f Favorability) Exportable() bool {
	return f == HighlyFavorable || f == Favorable
}

// ScoredDay is one evaluated day in an auspicious-time search result.
type ScoredDay struct {
	Date              time.Time    `json:"date"`
	Nakshatra         string       `json:"nakshatra"`
	NakshatraEnglish  string       `json:"nakshatra_english,omitempty"`
	NakshatraTamil    string       `json:"nakshatra_tamil,omitempty"`
	DayOfWeek         string       `json:"day_of_week"`
	Score             float64      `json:"score"`
	Favorability      Favorability `json:"favorability"`
	BestTimeRange     string       `json:"best_time_range"`
	Notes             []string     `json:"notes,omitempty"`
	IsRSNakshatra     bool         `json:"is_rs_nakshatra"`
	IsMythraMuhurtham bool         `json:"is_mythra_muhurtham"`
	RahuKalam         string       `json:"rahu_kalam,omitempty"`
	Yamagandam        string       `json:"yamagandam,omitempty"`
	ChandrashtamaFor  []string     `json:"chandrashtama_for,omitempty"`
}

// PersonalScore is the opaque result of the backend calculate_personal_score
// procedure. Breakdown and recommendations are passed through unmodified;
// only the top-level score is interpreted client-side.
type PersonalScore struct {
	Score                float64        `json:"score"`
	TarabalamType        string         `json:"tarabalamType,omitempty"`
	TarabalamExplanation map[string]any `json:"tarabalamExplanation,omitempty"`
	ScoreBreakdown       map[string]any `json:"scoreBreakdown,omitempty"`
	Recommendations      map[string]any `json:"recommendations,omitempty"`
}

// RecommendationTexts extracts the favorable or unfavorable activity texts
// for a language key from the nested recommendations payload. The backend
// value may be a single string or a list; both are normalized to a slice.
// Missing paths return nil rather than an error.
func (p *PersonalScore) RecommendationTexts(kind, lang string) []string {
	activities, ok := p.Recommendations["activities"].(map[string]any)
	if !ok {
		return nil
	}
	byKind, ok := activities[kind].(map[string]any)
	if !ok {
		return nil
	}
	switch v := byKind[lang].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// DayScore pairs a calendar day with its personal score.
type DayScore struct {
	Date      time.Time      `json:"date"`
	Nakshatra string         `json:"nakshatra"`
	Personal  *PersonalScore `json:"personal_score"`
}

// ChandrashtamaDay is one inauspicious-alignment day for a birth star, as
// returned by the get_chandrashtama_days procedure.
type ChandrashtamaDay struct {
	Date      time.Time `json:"date"`
	Nakshatra string    `json:"nakshatra"` // formatted day nakshatra from the backend
}

// DayRange formats the approximate Chandrashtama window (the alignment spans
// roughly 2-2.5 days; start plus one day is displayed).
func (c ChandrashtamaDay) DayRange() string {
	end := c.Date.AddDate(0, 0, 1)
	return c.Date.Format("Jan 2") + "-" + end.Format("Jan 2")
}

// DashboardPeriod selects the personal-dashboard horizon.
type DashboardPeriod string

const (
	PeriodWeek  DashboardPeriod = "week"
	PeriodMonth DashboardPeriod = "month"
	PeriodYear  DashboardPeriod = "year"
)

// Days returns the horizon length; unknown periods default to a month.
func (p DashboardPeriod) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}
