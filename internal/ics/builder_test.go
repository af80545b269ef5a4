package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBuilder() *Builder {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return NewBuilderWithClock(
		func() time.Time { return now },
		func() string { n++; return "suffix00" },
	)
}

func testEvent() EventInput {
	return EventInput{
		Date:        time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC),
		Title:       "🟢 Favorable Day (Score: 8.2)",
		Description: "Favorability: highly favorable\nScore: 8.2/10",
		Categories:  []string{"Favorable Day", "Personal Calendar"},
	}
}

func TestBuildDocumentStructure(t *testing.T) {
	doc := fixedBuilder().BuildDocument("Test", []EventInput{testEvent()})

	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(doc, "END:VCALENDAR"))
	assert.Equal(t, 1, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Equal(t, 1, strings.Count(doc, "END:VEVENT"))
	assert.Equal(t, 1, strings.Count(doc, "BEGIN:VALARM"))
	assert.Contains(t, doc, "X-WR-CALNAME:Test")

	// All-day values: date with no time component, end = start + 1 day.
	assert.Contains(t, doc, "DTSTART;VALUE=DATE:20250314")
	assert.Contains(t, doc, "DTEND;VALUE=DATE:20250315")
	assert.NotContains(t, doc, "DTSTART;VALUE=DATE:20250314T")

	// 8 AM reminder on the event day.
	assert.Contains(t, doc, "TRIGGER;VALUE=DATE-TIME:20250314T080000Z")

	// CRLF line discipline: no bare LF anywhere.
	for _, line := range strings.Split(doc, CRLF) {
		assert.NotContains(t, line, "\n")
	}
}

func TestBuildDocumentEscapesNewlines(t *testing.T) {
	ev := testEvent()
	doc := fixedBuilder().BuildDocument("Test", []EventInput{ev})

	// The literal newline must appear as the two characters backslash-n
	// inside the DESCRIPTION line.
	assert.Contains(t, doc, `DESCRIPTION:Favorability: highly favorable\nScore: 8.2/10`)

	for _, line := range strings.Split(doc, CRLF) {
		if strings.HasPrefix(line, "DESCRIPTION:") {
			assert.NotContains(t, line, "\n")
		}
	}
}

func TestBuildDocumentIdempotent(t *testing.T) {
	events := []EventInput{testEvent(), {
		Date:       time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		Title:      "⚠️ Chandrashtama Day - Caution",
		Categories: []string{"Chandrashtama", "Caution"},
	}}

	a := fixedBuilder().BuildDocument("My Cal", events)
	b := fixedBuilder().BuildDocument("My Cal", events)
	assert.Equal(t, a, b, "fixed clock and suffix must yield byte-identical output")
}

func TestBuildDocumentSummaryAndCategories(t *testing.T) {
	doc := fixedBuilder().BuildDocument("My Cal", []EventInput{testEvent()})

	var summary, categories string
	for _, line := range strings.Split(doc, CRLF) {
		if strings.HasPrefix(line, "SUMMARY:") {
			summary = line
		}
		if strings.HasPrefix(line, "CATEGORIES:") {
			categories = line
		}
	}
	assert.Contains(t, summary, "8.2")
	require.NotEmpty(t, categories)
	assert.NotEqual(t, "CATEGORIES:", categories)
	assert.Contains(t, categories, "Favorable Day")
}

func TestBuildDocumentUIDPrefix(t *testing.T) {
	ev := testEvent()
	ev.UIDPrefix = "chandrashtama"
	doc := fixedBuilder().BuildDocument("Test", []EventInput{ev})
	assert.Contains(t, doc, "UID:chandrashtama-2025-03-14-suffix00")
}

// The emitted document must parse as valid iCalendar with the library used
// elsewhere in the ecosystem, and survive a parse round-trip structurally.
func TestBuildDocumentParsesWithICalLibrary(t *testing.T) {
	events := []EventInput{testEvent(), {
		Date:        time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		Title:       "Second Day",
		Description: "line one\nline two",
		Categories:  []string{"Auspicious Day"},
	}}
	doc := NewBuilder().BuildDocument("Round Trip", events)

	cal, err := ical.ParseCalendar(strings.NewReader(doc))
	require.NoError(t, err)
	parsed := cal.Events()
	require.Len(t, parsed, 2)

	first := parsed[0]
	uid := first.GetProperty(ical.ComponentPropertyUniqueId)
	require.NotNil(t, uid)
	assert.True(t, strings.HasPrefix(uid.Value, "event-2025-03-14-"))

	summary := first.GetProperty(ical.ComponentPropertySummary)
	require.NotNil(t, summary)
	assert.Contains(t, summary.Value, "8.2")

	start, err := first.GetAllDayStartAt()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", start.Format(time.DateOnly))
}

func TestEscapeText(t *testing.T) {
	cases := map[string]string{
		"plain":         "plain",
		"a\nb":          `a\nb`,
		"a\r\nb":        `a\nb`,
		"semi;colon":    `semi\;colon`,
		"comma,here":    `comma\,here`,
		`back\slash`:    `back\\slash`,
		"mix;\na,\\ end": "mix\\;\\na\\,\\\\ end",
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeText(in), "input %q", in)
	}
}
