package auspicious

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/ics"
)

var titleCaser = cases.Title(language.English)

// ExportCalendarName builds the X-WR-CALNAME value for a search export.
func ExportCalendarName(activity domain.Activity) string {
	return ExportCalendarNamePrefix + titleCaser.String(string(activity))
}

// ExportEvents converts the favorable subset of search results into calendar
// events. Neutral and unfavorable days are dropped; an entirely unfavorable
// result set yields domain.ErrNothingToExport.
func ExportEvents(results []domain.ScoredDay, activity domain.Activity) ([]ics.EventInput, error) {
	events := make([]ics.EventInput, 0, len(results))
	for _, r := range results {
		if !r.Favorability.Exportable() {
			continue
		}
		events = append(events, ics.EventInput{
			Date:        r.Date,
			Title:       eventTitle(r, activity),
			Description: eventDescription(r, activity),
			Categories:  eventCategories(r, activity),
		})
	}
	if len(events) == 0 {
		return nil, domain.ErrNothingToExport
	}
	return events, nil
}

func activityEmoji(activity domain.Activity) string {
	switch activity {
	case domain.ActivityMedical:
		return EmojiMedical
	case domain.ActivityTravel:
		return EmojiTravel
	case domain.ActivityFinancial:
		return EmojiFinancial
	}
	return EmojiGenericActivity
}

func favorabilityEmoji(f domain.Favorability) string {
	switch f {
	case domain.HighlyFavorable:
		return EmojiHighlyFavorable
	case domain.Favorable:
		return EmojiFavorable
	}
	return EmojiNeutral
}

func eventTitle(r domain.ScoredDay, activity domain.Activity) string {
	title := fmt.Sprintf("%s %s Auspicious Time: %s",
		favorabilityEmoji(r.Favorability),
		activityEmoji(activity),
		titleCaser.String(string(activity)))
	if r.IsMythraMuhurtham {
		title = "✨ " + title + " (Mythra Muhurtham)"
	}
	return title
}

func eventDescription(r domain.ScoredDay, activity domain.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Auspicious day for %s\n", activity)
	fmt.Fprintf(&b, "Favorability: %s\n", strings.ReplaceAll(string(r.Favorability), "_", " "))
	fmt.Fprintf(&b, "Score: %.1f/10\n", r.Score)
	fmt.Fprintf(&b, "Nakshatra: %s\n", r.Nakshatra)
	fmt.Fprintf(&b, "Best Time: %s\n\n", r.BestTimeRange)

	if len(r.Notes) > 0 {
		b.WriteString("Notes:\n")
		for _, note := range r.Notes {
			fmt.Fprintf(&b, "• %s\n", note)
		}
	}

	b.WriteString("\nCaution Times:\n")
	fmt.Fprintf(&b, "• Rahu Kalam: %s\n", orFallback(r.RahuKalam, "N/A"))
	fmt.Fprintf(&b, "• Yamagandam: %s\n", orFallback(r.Yamagandam, "N/A"))
	return b.String()
}

func eventCategories(r domain.ScoredDay, activity domain.Activity) []string {
	categories := []string{"Auspicious Day", titleCaser.String(string(activity))}
	if r.IsMythraMuhurtham {
		categories = append(categories, "Mythra Muhurtham")
	}
	return categories
}
