package personal

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tamilpanchangam/panchangam/internal/domain"
)

// scoreCache memoizes calculate_personal_score results. The backend data
// for a (date, nakshatra) pair is stable between ingestion runs, so entries
// live until the TTL sweeps them.
type scoreCache struct {
	lru *expirable.LRU[string, *domain.PersonalScore]
}

func newScoreCache(size int, ttl time.Duration) *scoreCache {
	return &scoreCache{
		lru: expirable.NewLRU[string, *domain.PersonalScore](size, nil, ttl),
	}
}

func scoreKey(date time.Time, nakshatra string) string {
	return date.Format(domain.DateFormat) + ":" + nakshatra
}

func (c *scoreCache) Get(date time.Time, nakshatra string) (*domain.PersonalScore, bool) {
	return c.lru.Get(scoreKey(date, nakshatra))
}

func (c *scoreCache) Set(date time.Time, nakshatra string, score *domain.PersonalScore) {
	c.lru.Add(scoreKey(date, nakshatra), score)
}
