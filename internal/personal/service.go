package personal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamilpanchangam/panchangam/internal/domain"
	"github.com/tamilpanchangam/panchangam/internal/logger"
	"github.com/tamilpanchangam/panchangam/internal/metrics"
	"github.com/tamilpanchangam/panchangam/internal/nakshatra"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// Service defines the interface for personal dashboard operations
type Service interface {
	GetDashboard(ctx context.Context, birthNakshatra string, period domain.DashboardPeriod) (*Dashboard, error)
	GetCharacteristics(ctx context.Context, birthNakshatra string) (*domain.NakshatraInfo, error)
}

// Dashboard is the personalized view for one birth star over a period:
// every day's personal score, the top favorable days, Chandrashtama
// alignments and the star's traditional characteristics.
type Dashboard struct {
	BirthNakshatra   string                 `json:"birth_nakshatra"`
	NakshatraEnglish string                 `json:"nakshatra_english"`
	NakshatraTamil   string                 `json:"nakshatra_tamil"`
	Period           domain.DashboardPeriod `json:"period"`
	Scores           []domain.DayScore      `json:"scores"`
	FavorableDays    []FavorableDay         `json:"favorable_days"`
	Chandrashtama    []ChandrashtamaEntry   `json:"chandrashtama_days"`
	Characteristics  *domain.NakshatraInfo  `json:"characteristics,omitempty"`
}

// FavorableDay is one of the top-scoring days in the period.
type FavorableDay struct {
	Date      time.Time             `json:"date"`
	Nakshatra string                `json:"nakshatra"`
	Score     float64               `json:"score"`
	Personal  *domain.PersonalScore `json:"personal_score"`
}

// ChandrashtamaEntry is one Chandrashtama alignment with its display range.
type ChandrashtamaEntry struct {
	Date      time.Time `json:"date"`
	Nakshatra string    `json:"nakshatra"`
	DayRange  string    `json:"day_range"`
}

type service struct {
	repo    repository.Panchangam
	scores  repository.Scores
	cache   *scoreCache
	workers int
	now     func() time.Time
}

// NewService creates a new personal dashboard service. workers bounds the
// concurrent score calls; values below one fall back to the default.
func NewService(repo repository.Panchangam, scores repository.Scores, workers int) Service {
	if workers < 1 {
		workers = DefaultScoreWorkers
	}
	return &service{
		repo:    repo,
		scores:  scores,
		cache:   newScoreCache(DefaultScoreCacheSize, DefaultScoreCacheTTL),
		workers: workers,
		now:     time.Now,
	}
}

// GetDashboard builds the full personalized view. Score calls run through a
// bounded worker window; a single day's failure drops that day, while a
// period where every call failed is an error. Chandrashtama lookup failures
// degrade to an empty list.
func (s *service) GetDashboard(ctx context.Context, birthNakshatra string, period domain.DashboardPeriod) (*Dashboard, error) {
	log := logger.FromContext(ctx)

	res, ok := nakshatra.Resolve(birthNakshatra)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNakshatra, birthNakshatra)
	}

	start := s.now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, period.Days())

	days, err := s.repo.GetDaysInRange(ctx, start, end)
	if err != nil {
		log.Error("Failed to query dashboard range", "error", err,
			"nakshatra", res.English, "period", period)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendQuery, err)
	}
	if len(days) == 0 {
		return nil, domain.ErrNoDataInRange
	}

	scores, err := s.scoreDays(ctx, days, birthNakshatra)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		BirthNakshatra:   birthNakshatra,
		NakshatraEnglish: res.English,
		NakshatraTamil:   res.Tamil,
		Period:           period,
		Scores:           scores,
		FavorableDays:    topFavorable(scores),
	}

	chandra, err := s.scores.GetChandrashtamaDays(ctx, birthNakshatra, start, end)
	if err != nil {
		log.Warn("Chandrashtama lookup failed", "error", err, "nakshatra", res.English)
	} else {
		dashboard.Chandrashtama = make([]ChandrashtamaEntry, 0, len(chandra))
		for _, c := range chandra {
			dashboard.Chandrashtama = append(dashboard.Chandrashtama, ChandrashtamaEntry{
				Date:      c.Date,
				Nakshatra: c.Nakshatra,
				DayRange:  c.DayRange(),
			})
		}
	}

	if info, err := s.GetCharacteristics(ctx, birthNakshatra); err == nil {
		dashboard.Characteristics = info
	} else if !errors.Is(err, domain.ErrUnknownNakshatra) {
		log.Warn("Characteristics lookup failed", "error", err, "nakshatra", res.English)
	}

	return dashboard, nil
}

// scoreDays fans the per-day score calls out over a bounded worker window.
// Results keep day order; failed days leave nil slots that are compacted
// afterwards.
func (s *service) scoreDays(ctx context.Context, days []domain.PanchangamDay, birthNakshatra string) ([]domain.DayScore, error) {
	log := logger.FromContext(ctx)

	results := make([]*domain.DayScore, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range days {
		i := i
		g.Go(func() error {
			day := &days[i]
			score, err := s.personalScore(gctx, day.Date, birthNakshatra)
			if err != nil {
				// Context cancellation aborts the whole window; any
				// other failure just drops this day.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn("Personal score call failed", "error", err,
					"date", day.Date.Format(domain.DateFormat))
				return nil
			}
			results[i] = &domain.DayScore{
				Date:      day.Date,
				Nakshatra: day.MainNakshatra,
				Personal:  score,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScoreRPC, err)
	}

	scores := make([]domain.DayScore, 0, len(results))
	for _, r := range results {
		if r != nil {
			scores = append(scores, *r)
		}
	}
	if len(scores) == 0 {
		return nil, domain.ErrScoreRPC
	}
	return scores, nil
}

func (s *service) personalScore(ctx context.Context, date time.Time, birthNakshatra string) (*domain.PersonalScore, error) {
	if cached, ok := s.cache.Get(date, birthNakshatra); ok {
		metrics.ScoreCacheHits.Inc()
		return cached, nil
	}
	score, err := s.scores.CalculatePersonalScore(ctx, date, birthNakshatra)
	if err != nil {
		metrics.ScoreRPCCalls.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}
	metrics.ScoreRPCCalls.WithLabelValues(metrics.ResultOK).Inc()
	s.cache.Set(date, birthNakshatra, score)
	return score, nil
}

// GetCharacteristics looks up the traditional characteristics for a birth
// star under its resolved English name.
func (s *service) GetCharacteristics(ctx context.Context, birthNakshatra string) (*domain.NakshatraInfo, error) {
	res, ok := nakshatra.Resolve(birthNakshatra)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNakshatra, birthNakshatra)
	}
	return s.repo.GetNakshatraCharacteristics(ctx, res.English)
}

// topFavorable picks the highest-scoring days at or above the favorable
// threshold, best first.
func topFavorable(scores []domain.DayScore) []FavorableDay {
	favorable := make([]FavorableDay, 0)
	for _, ds := range scores {
		if ds.Personal == nil || ds.Personal.Score < FavorableScoreThreshold {
			continue
		}
		favorable = append(favorable, FavorableDay{
			Date:      ds.Date,
			Nakshatra: ds.Nakshatra,
			Score:     ds.Personal.Score,
			Personal:  ds.Personal,
		})
	}
	sort.SliceStable(favorable, func(i, j int) bool {
		return favorable[i].Score > favorable[j].Score
	})
	if len(favorable) > TopFavorableCount {
		favorable = favorable[:TopFavorableCount]
	}
	return favorable
}
