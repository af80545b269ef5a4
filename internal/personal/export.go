package personal

import (
	"fmt"
	"strings"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/ics"
)

// ExportCalendarName builds the X-WR-CALNAME value for a personal export.
func ExportCalendarName(birthNakshatra string) string {
	return ExportCalendarNamePrefix + birthNakshatra
}

// ExportEvents converts a dashboard into calendar events: one per top
// favorable day, one per Chandrashtama alignment. An empty dashboard yields
// domain.ErrNothingToExport.
func ExportEvents(d *Dashboard) ([]ics.EventInput, error) {
	events := make([]ics.EventInput, 0, len(d.FavorableDays)+len(d.Chandrashtama))
	for _, day := range d.FavorableDays {
		events = append(events, ics.EventInput{
			Date:         day.Date,
			Title:        fmt.Sprintf("🟢 Favorable Day (Score: %.1f)", day.Score),
			Description:  favorableDescription(d.BirthNakshatra, day),
			Categories:   []string{"Favorable Day", "Personal Calendar"},
			ReminderText: ReminderFavorable,
			UIDPrefix:    UIDPrefixFavorable,
		})
	}
	for _, day := range d.Chandrashtama {
		events = append(events, ics.EventInput{
			Date:         day.Date,
			Title:        ChandrashtamaEventTitle,
			Description:  chandrashtamaDescription(d.BirthNakshatra, day),
			Categories:   []string{"Chandrashtama", "Caution", "Personal Calendar"},
			ReminderText: ReminderChandrashtama,
			UIDPrefix:    UIDPrefixChandrashtama,
		})
	}
	if len(events) == 0 {
		return nil, domain.ErrNothingToExport
	}
	return events, nil
}

func favorableDescription(birthNakshatra string, day FavorableDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This is a favorable day for you based on your birth star %s.\n\n", birthNakshatra)
	fmt.Fprintf(&b, "Favorability Score: %.1f/10\n", day.Score)
	fmt.Fprintf(&b, "Nakshatra: %s\n\n", day.Nakshatra)

	if p := day.Personal; p != nil {
		if p.TarabalamType != "" {
			fmt.Fprintf(&b, "Tarabalam: %s\n", p.TarabalamType)
			if en, ok := p.TarabalamExplanation["en"].(string); ok && en != "" {
				fmt.Fprintf(&b, "%s\n\n", en)
			}
		}
		writeActivityList(&b, "Favorable Activities:", p.RecommendationTexts("favorable", "en"))
		writeActivityList(&b, "Activities to Avoid:", p.RecommendationTexts("unfavorable", "en"))
	}
	return b.String()
}

func writeActivityList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
	b.WriteString("\n")
}

func chandrashtamaDescription(birthNakshatra string, day ChandrashtamaEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This is a Chandrashtama day for your birth star %s.\n\n", birthNakshatra)
	b.WriteString("During Chandrashtama periods, it's advisable to avoid important activities and decisions.\n\n")
	fmt.Fprintf(&b, "Affected Nakshatra: %s\n", day.Nakshatra)
	fmt.Fprintf(&b, "Approximate Period: %s\n\n", day.DayRange)
	b.WriteString("Recommendations:\n")
	b.WriteString("• Avoid major financial decisions\n")
	b.WriteString("• Postpone beginning new ventures\n")
	b.WriteString("• Focus on routine tasks\n")
	b.WriteString("• Take extra care of your health\n")
	b.WriteString("• Practice meditation and spiritual activities")
	return b.String()
}
