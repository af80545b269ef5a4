package auspicious

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
	"github.com/tamilpanchangam/panchangam/internal/nakshatra"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// Service defines the interface for auspicious-time search operations
type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]domain.ScoredDay, error)
	Evaluate(day *domain.PanchangamDay, activity domain.Activity) domain.ScoredDay
}

// SearchRequest describes one auspicious-time query.
type SearchRequest struct {
	Start               time.Time
	End                 time.Time
	Activity            domain.Activity
	OnlyMythraMuhurtham bool
	SortBy              string // SortByDate (default) or SortByScore
	SortDescending      bool
}

type service struct {
	repo repository.Panchangam
}

// NewService creates a new auspicious-time search service
func NewService(repo repository.Panchangam) Service {
	return &service{repo: repo}
}

// Search loads the date range, scores every day for the requested activity
// and returns the results in the requested order. An empty range yields
// domain.ErrNoDataInRange rather than an empty slice so handlers can
// distinguish "no rows" from "all filtered out".
func (s *service) Search(ctx context.Context, req SearchRequest) ([]domain.ScoredDay, error) {
	log := logger.FromContext(ctx)

	if !req.Activity.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidActivity, req.Activity)
	}
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: %s after %s", domain.ErrInvalidDateRange,
			req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))
	}

	days, err := s.repo.GetDaysInRange(ctx, req.Start, req.End)
	if err != nil {
		log.Error("Failed to query panchangam range", "error", err,
			"start", req.Start.Format(domain.DateFormat),
			"end", req.End.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}
	if len(days) == 0 {
		return nil, domain.ErrNoDataInRange
	}

	results := make([]domain.ScoredDay, 0, len(days))
	for i := range days {
		day := &days[i]
		if req.OnlyMythraMuhurtham && !day.IsMythraMuhurtham {
			continue
		}
		results = append(results, s.Evaluate(day, req.Activity))
	}

	sortResults(results, req.SortBy, req.SortDescending)
	metrics.AuspiciousSearches.WithLabelValues(string(req.Activity)).Inc()

	log.Debug("auspicious search complete",
		"activity", req.Activity, "days", len(days), "results", len(results))
	return results, nil
}

// Evaluate scores a single day for an activity. The weights and their order
// of application are fixed; favorability is derived from the final score, so
// activity adjustments can move a day across label boundaries.
func (s *service) Evaluate(day *domain.PanchangamDay, activity domain.Activity) domain.ScoredDay {
	score := BaseScore
	if day.CosmicScore != nil {
		score = *day.CosmicScore
	}

	var notes []string
	bestTime := ""

	isRS := nakshatra.IsRS(day.MainNakshatra)
	if isRS {
		score -= RSNakshatraPenalty
		notes = append(notes, NoteRSNakshatra)
	}

	if day.IsPournami {
		score += PournamiBonus
		notes = append(notes, NotePournami)
	}

	if day.IsMythraMuhurtham {
		score += MythraMuhurthamBonus
		notes = append(notes, NoteMythraMuhurtham)
	}

	switch activity {
	case domain.ActivityMedical:
		if isRS {
			score -= MedicalRSPenalty
			notes = append(notes, NoteMedicalRS)
		}
		bestTime = fmt.Sprintf("Morning hours (avoid %s)",
			orFallback(day.RahuKalam, FallbackRahuKalam))

	case domain.ActivityTravel:
		if day.Vaara == VaaraSundayTamil || day.Vaara == "Sunday" {
			score += TravelSundayBonus
		}
		if len(day.ChandrashtamaFor) > 0 {
			notes = append(notes, NoteTravelChandrashtama)
		}
		bestTime = fmt.Sprintf("Early morning or afternoon (avoid %s and %s)",
			orFallback(day.RahuKalam, FallbackRahuKalam),
			orFallback(day.Yamagandam, FallbackYamagandam))

	case domain.ActivityFinancial:
		switch day.Vaara {
		case VaaraThursdayTamil, "Thursday", VaaraFridayTamil, "Friday":
			score += FinancialThuFriBonus
			notes = append(notes, NoteFinancialThuFri)
		}
		if isRS {
			score -= FinancialRSPenalty
			notes = append(notes, NoteFinancialRS)
		}
		if day.IsMythraMuhurtham {
			score += FinancialMythraBonus
		}
		bestTime = orFallback(day.AbhijitMuhurta, BestTimeFinancialFallback)

	default:
		bestTime = BestTimeDefault
	}

	score = math.Round(score*10) / 10

	english, tamil := nakshatra.DisplayNames(day.MainNakshatra)

	return domain.ScoredDay{
		Date:              day.Date,
		Nakshatra:         day.MainNakshatra,
		NakshatraEnglish:  english,
		NakshatraTamil:    tamil,
		DayOfWeek:         day.Vaara,
		Score:             score,
		Favorability:      domain.FavorabilityForScore(score),
		BestTimeRange:     bestTime,
		Notes:             notes,
		IsRSNakshatra:     isRS,
		IsMythraMuhurtham: day.IsMythraMuhurtham,
		RahuKalam:         day.RahuKalam,
		Yamagandam:        day.Yamagandam,
		ChandrashtamaFor:  day.ChandrashtamaFor,
	}
}

func sortResults(results []domain.ScoredDay, sortBy string, descending bool) {
	sort.SliceStable(results, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByScore:
			less = results[i].Score < results[j].Score
		default:
			less = results[i].Date.Before(results[j].Date)
		}
		if descending {
			return !less
		}
		return less
	})
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
