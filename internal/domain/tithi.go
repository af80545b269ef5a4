package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Tithi paksha labels as they appear in backend rows.
const (
	PakshaShukla  = "சுக்ல பக்ஷ"   // waxing fortnight
	PakshaKrishna = "கிருஷ்ண பக்ஷ" // waning fortnight
)

// TithiState tags the parse outcome of a day's tithi payload. The backend
// delivers the column variously as a JSON-encoded string, a bare object, or
// an array; rather than coercing shapes at every call site the record keeps
// an explicit state.
type TithiState int

const (
	TithiMissing TithiState = iota
	TithiMalformed
	TithiParsed
)

// TithiPhase is one lunar-day segment within a calendar day.
type TithiPhase struct {
	Name   string    `json:"name"`
	Paksha string    `json:"paksha"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// TithiList is the tagged union for a day's tithi column:
// Missing, Malformed (raw text retained), or Parsed with ordered phases.
type TithiList struct {
	State  TithiState   `json:"state"`
	Phases []TithiPhase `json:"phases,omitempty"`
	Raw    string       `json:"-"`
}

// tithiPhaseJSON tolerates the backend's known "ame" key typo alongside the
// correct "name" key. No other typo variants are honored.
type tithiPhaseJSON struct {
	Name   string    `json:"name"`
	Ame    string    `json:"ame"`
	Paksha string    `json:"paksha"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

func (p tithiPhaseJSON) toPhase() TithiPhase {
	name := p.Name
	if name == "" {
		name = p.Ame
	}
	return TithiPhase{Name: name, Paksha: p.Paksha, Start: p.Start, End: p.End}
}

// ParseTithi normalizes a raw tithi column value. Empty input yields the
// Missing state; undecodable input yields Malformed with the raw text kept
// for display. A bare object is treated as a one-element list.
func ParseTithi(raw []byte) TithiList {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return TithiList{State: TithiMissing}
	}

	// A jsonb string value arrives double-encoded, e.g. "\"[{...}]\"".
	// Unwrap one level and dispatch on the inner content.
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return TithiList{State: TithiMalformed, Raw: trimmed}
		}
		return ParseTithi([]byte(inner))
	}

	// Strings that are not JSON-shaped are display values, not structures.
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return TithiList{State: TithiMalformed, Raw: trimmed}
	}

	if strings.HasPrefix(trimmed, "{") {
		var one tithiPhaseJSON
		if err := json.Unmarshal([]byte(trimmed), &one); err != nil {
			return TithiList{State: TithiMalformed, Raw: trimmed}
		}
		return TithiList{State: TithiParsed, Phases: []TithiPhase{one.toPhase()}}
	}

	var many []tithiPhaseJSON
	if err := json.Unmarshal([]byte(trimmed), &many); err != nil {
		return TithiList{State: TithiMalformed, Raw: trimmed}
	}
	phases := make([]TithiPhase, 0, len(many))
	for _, p := range many {
		phases = append(phases, p.toPhase())
	}
	if len(phases) == 0 {
		return TithiList{State: TithiMissing}
	}
	return TithiList{State: TithiParsed, Phases: phases}
}

// First returns the phase active at the given instant, falling back to the
// first listed phase. Returns nil unless the list parsed.
func (t TithiList) First(now time.Time) *TithiPhase {
	if t.State != TithiParsed || len(t.Phases) == 0 {
		return nil
	}
	for i := range t.Phases {
		p := &t.Phases[i]
		if !now.Before(p.Start) && !now.After(p.End) {
			return p
		}
	}
	return &t.Phases[0]
}

// DisplayName returns the active phase name or a placeholder when the
// payload was missing or malformed.
func (t TithiList) DisplayName(now time.Time) string {
	if p := t.First(now); p != nil && p.Name != "" {
		return p.Name
	}
	return "Unknown"
}

// MoonPhase derives the waxing/waning flags from the pakshas present in the
// list. A malformed or missing list yields neither flag.
func (t TithiList) MoonPhase() MoonPhase {
	var mp MoonPhase
	if t.State != TithiParsed {
		return mp
	}
	for _, p := range t.Phases {
		if strings.Contains(p.Paksha, "சுக்ல") {
			mp.IsValarPirai = true
		}
		if strings.Contains(p.Paksha, "கிருஷ்ண") {
			mp.IsTheiPirai = true
		}
	}
	return mp
}
