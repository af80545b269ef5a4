package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilpanchangam/panchangam/internal/database/postgres"
	"github.com/tamilpanchangam/panchangam/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Panchangam  repository.Panchangam
	Scores      repository.Scores
	Preferences repository.Preferences
}

// InitializeRepositories creates all repository implementations against the
// shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Panchangam:  postgres.NewPanchangamRepository(dbPool),
		Scores:      postgres.NewScoresRepository(dbPool),
		Preferences: postgres.NewPreferencesRepository(dbPool),
	}
}
