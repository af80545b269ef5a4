package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tithiPayload() string {
	return `[
		{"name":"சதுர்த்தி","paksha":"சுக்ல பக்ஷ","start":"2025-03-14T00:00:00Z","end":"2025-03-14T10:30:00Z"},
		{"name":"பஞ்சமி","paksha":"சுக்ல பக்ஷ","start":"2025-03-14T10:30:00Z","end":"2025-03-15T00:00:00Z"}
	]`
}

func TestParseTithiArray(t *testing.T) {
	list := ParseTithi([]byte(tithiPayload()))

	require.Equal(t, TithiParsed, list.State)
	require.Len(t, list.Phases, 2)
	assert.Equal(t, "சதுர்த்தி", list.Phases[0].Name)
	assert.Equal(t, PakshaShukla, list.Phases[0].Paksha)
}

func TestParseTithiBareObject(t *testing.T) {
	list := ParseTithi([]byte(`{"name":"அமாவாசை","paksha":"கிருஷ்ண பக்ஷ"}`))

	require.Equal(t, TithiParsed, list.State)
	require.Len(t, list.Phases, 1)
	assert.Equal(t, "அமாவாசை", list.Phases[0].Name)
}

func TestParseTithiDoubleEncodedString(t *testing.T) {
	// A jsonb string column renders through ::text with an outer quote
	// layer; the inner document must still parse.
	wrapped := `"[{\"name\":\"சதுர்த்தி\",\"paksha\":\"சுக்ல பக்ஷ\",\"start\":\"2025-03-14T00:00:00Z\",\"end\":\"2025-03-15T00:00:00Z\"}]"`

	list := ParseTithi([]byte(wrapped))

	require.Equal(t, TithiParsed, list.State)
	require.Len(t, list.Phases, 1)
	assert.Equal(t, "சதுர்த்தி", list.Phases[0].Name)
	assert.True(t, list.MoonPhase().IsValarPirai)
}

func TestParseTithiAmeAlias(t *testing.T) {
	// The backend's known "ame" key typo stands in for "name"; a proper
	// "name" key wins when both are present.
	list := ParseTithi([]byte(`[{"ame":"துவாதசி","paksha":"கிருஷ்ண பக்ஷ"}]`))
	require.Equal(t, TithiParsed, list.State)
	assert.Equal(t, "துவாதசி", list.Phases[0].Name)

	list = ParseTithi([]byte(`[{"name":"ஏகாதசி","ame":"துவாதசி"}]`))
	require.Equal(t, TithiParsed, list.State)
	assert.Equal(t, "ஏகாதசி", list.Phases[0].Name)
}

func TestParseTithiMissing(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", "[]"} {
		list := ParseTithi([]byte(raw))
		assert.Equal(t, TithiMissing, list.State, "raw=%q", raw)
		assert.Nil(t, list.First(time.Now()))
	}
}

func TestParseTithiMalformed(t *testing.T) {
	for _, raw := range []string{"சதுர்த்தி", "[{broken", `{"name":1}`, `"free text"`} {
		list := ParseTithi([]byte(raw))
		assert.Equal(t, TithiMalformed, list.State, "raw=%q", raw)
		assert.Equal(t, "Unknown", list.DisplayName(time.Now()))
	}
	// Malformed input keeps the raw text for display.
	assert.Equal(t, "சதுர்த்தி", ParseTithi([]byte("சதுர்த்தி")).Raw)
}

func TestTithiFirstSelectsActivePhase(t *testing.T) {
	list := ParseTithi([]byte(tithiPayload()))
	require.Equal(t, TithiParsed, list.State)

	morning := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, "சதுர்த்தி", list.First(morning).Name)
	assert.Equal(t, "பஞ்சமி", list.First(evening).Name)

	// Outside every window the first listed phase stands in.
	outside := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "சதுர்த்தி", list.First(outside).Name)
}

func TestTithiMoonPhase(t *testing.T) {
	waxing := ParseTithi([]byte(`[{"name":"பஞ்சமி","paksha":"சுக்ல பக்ஷ"}]`))
	assert.True(t, waxing.MoonPhase().IsValarPirai)
	assert.False(t, waxing.MoonPhase().IsTheiPirai)

	waning := ParseTithi([]byte(`[{"name":"சப்தமி","paksha":"கிருஷ்ண பக்ஷ"}]`))
	assert.False(t, waning.MoonPhase().IsValarPirai)
	assert.True(t, waning.MoonPhase().IsTheiPirai)

	// A day straddling both fortnights carries both flags.
	both := ParseTithi([]byte(tithiPayload()))
	both.Phases[1].Paksha = PakshaKrishna
	mp := both.MoonPhase()
	assert.True(t, mp.IsValarPirai)
	assert.True(t, mp.IsTheiPirai)

	assert.Zero(t, ParseTithi(nil).MoonPhase())
}
