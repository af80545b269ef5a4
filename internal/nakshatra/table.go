package nakshatra

// Entry is one row of the canonical nakshatra table: the English and Tamil
// names for a star, every alternate spelling accepted as equivalent input,
// and whether the star belongs to the RS (inauspicious) group.
//
// The table is closed-world: 27 stars, constructed once, never mutated.
type Entry struct {
	English    string
	Tamil      string
	Alternates []string
	IsRS       bool
}

// entries lists the 27 nakshatras in traditional order. Alternate spellings
// carry the Tamil variants and Latin transliterations observed in backend
// rows; Swati appears in the data under two Tamil spellings (சுவாதி and
// ஸ்வாதி), both registered here.
var entries = []Entry{
	{English: "Ashwini", Tamil: "அசுவினி", Alternates: []string{"அஸ்வினி", "அச்வினி"}},
	{English: "Bharani", Tamil: "பரணி", Alternates: []string{"பரநி"}, IsRS: true},
	{English: "Krittika", Tamil: "கார்த்திகை", Alternates: []string{"கிருத்திகை", "கிருத்திகா", "கார்திகை", "Karthigai"}, IsRS: true},
	{English: "Rohini", Tamil: "ரோகிணி"},
	{English: "Mrigashira", Tamil: "மிருகசீரிஷம்", Alternates: []string{"Mrigasira"}},
	{English: "Ardra", Tamil: "திருவாதிரை", Alternates: []string{"திருவாதிரா", "ஆர்திரா", "ஆர்த்ரா", "Thiruvadirai"}, IsRS: true},
	{English: "Punarvasu", Tamil: "புனர்பூசம்"},
	{English: "Pushya", Tamil: "பூசம்"},
	{English: "Ashlesha", Tamil: "ஆயில்யம்", Alternates: []string{"ஆஷ்லேஷா", "ஆஸ்லேஷா", "அஸ்லேசா", "Ayilyam"}, IsRS: true},
	{English: "Magha", Tamil: "மகம்", Alternates: []string{"Makam"}, IsRS: true},
	{English: "Purva Phalguni", Tamil: "பூரம்", Alternates: []string{"Pooram"}, IsRS: true},
	{English: "Uttara Phalguni", Tamil: "உத்திரம்"},
	{English: "Hasta", Tamil: "ஹஸ்தம்", Alternates: []string{"அஸ்தம்", "ஹஸ்த"}},
	{English: "Chitra", Tamil: "சித்திரை", Alternates: []string{"சித்ரா", "சித்ர", "Chitirai"}, IsRS: true},
	{English: "Swati", Tamil: "சுவாதி", Alternates: []string{"ஸ்வாதி", "ஸ்வாதீ", "Swathi"}, IsRS: true},
	{English: "Vishakha", Tamil: "விசாகம்", Alternates: []string{"விசாக", "விசாகா", "விஷாகம்", "Visakam"}, IsRS: true},
	{English: "Anuradha", Tamil: "அனுஷம்"},
	{English: "Jyeshtha", Tamil: "கேட்டை", Alternates: []string{"ஜ்யேஷ்டா", "ஜேஷ்டா", "ஜ்யேஷ்ட", "Kettai"}, IsRS: true},
	{English: "Mula", Tamil: "மூலம்"},
	{English: "Purva Ashadha", Tamil: "பூராடம்", Alternates: []string{"பூர்வாஷாடா", "பூர்வாஷாட", "பூர்வ அஷாடா", "Pooradam"}, IsRS: true},
	{English: "Uttara Ashadha", Tamil: "உத்திராடம்", Alternates: []string{"உத்தராஷாடா", "உத்தராஷாட", "உத்தர அஷாடா"}},
	{English: "Shravana", Tamil: "திருவோணம்"},
	{English: "Dhanishta", Tamil: "அவிட்டம்"},
	{English: "Shatabhisha", Tamil: "சதயம்"},
	{English: "Purva Bhadrapada", Tamil: "பூரட்டாதி", Alternates: []string{"பூர்வ பத்ரபதா", "பூர்வா பாத்ரபதா", "Poorattathi"}, IsRS: true},
	{English: "Uttara Bhadrapada", Tamil: "உத்திரட்டாதி", Alternates: []string{"உத்தர பத்ரபதா", "உத்தரா பாத்ரபதா"}},
	{English: "Revati", Tamil: "ரேவதி"},
}

// All returns the canonical table in traditional order. The returned slice
// must not be modified.
func All() []Entry {
	return entries
}
