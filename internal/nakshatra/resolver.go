package nakshatra

import "unicode"

// Resolution is the canonical identity of a nakshatra plus its RS
// classification.
type Resolution struct {
	English string `json:"english"`
	Tamil   string `json:"tamil"`
	IsRS    bool   `json:"is_rs"`
}

// Lookup indexes, built once at package init from the entries table.
// Construction iterates the slice in order, so if a spelling were ever
// registered under two entries the first would win deterministically.
var (
	byEnglish   map[string]*Entry
	byTamil     map[string]*Entry
	byAlternate map[string]*Entry
)

func init() {
	byEnglish = make(map[string]*Entry, len(entries))
	byTamil = make(map[string]*Entry, len(entries))
	byAlternate = make(map[string]*Entry)

	for i := range entries {
		e := &entries[i]
		if _, seen := byEnglish[e.English]; !seen {
			byEnglish[e.English] = e
		}
		if _, seen := byTamil[e.Tamil]; !seen {
			byTamil[e.Tamil] = e
		}
		for _, alt := range e.Alternates {
			if _, seen := byAlternate[alt]; !seen {
				byAlternate[alt] = e
			}
		}
	}
}

// Resolve maps any accepted spelling of a nakshatra to its canonical
// English/Tamil pair and RS classification. Matching tries canonical
// English, then canonical Tamil, then alternate spellings. Unrecognized
// input (either script) returns ok=false; Resolve never panics and has no
// side effects.
func Resolve(input string) (Resolution, bool) {
	if input == "" {
		return Resolution{}, false
	}
	if e, ok := byEnglish[input]; ok {
		return resolution(e), true
	}
	if e, ok := byTamil[input]; ok {
		return resolution(e), true
	}
	if e, ok := byAlternate[input]; ok {
		return resolution(e), true
	}
	return Resolution{}, false
}

// IsRS reports whether the input names an RS nakshatra via any lookup path.
// Unknown names are never treated as inauspicious.
func IsRS(input string) bool {
	r, ok := Resolve(input)
	return ok && r.IsRS
}

// DisplayNames returns the English and Tamil names to show for a raw
// backend value. Unknown input falls back to displaying the raw string
// unmodified in the slot matching its script, leaving the other empty.
func DisplayNames(input string) (english, tamil string) {
	if r, ok := Resolve(input); ok {
		return r.English, r.Tamil
	}
	if IsTamilScript(input) {
		return "", input
	}
	return input, ""
}

// IsTamilScript reports whether the string contains any rune in the Tamil
// Unicode block (U+0B80-U+0BFF).
func IsTamilScript(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Tamil, r) {
			return true
		}
	}
	return false
}

func resolution(e *Entry) Resolution {
	return Resolution{English: e.English, Tamil: e.Tamil, IsRS: e.IsRS}
}
