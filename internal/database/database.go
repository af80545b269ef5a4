package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tamilpanchangam/panchangam/internal/logger"
)

// Pool is the subset of pgxpool.Pool the rest of the service depends on.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool opens and verifies a connection pool against the backend
// database. MinConns stays at DefaultMinConnections so the first lookup
// after an idle stretch does not pay the connect cost.
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	poolCfg.MaxConns = int32(min(maxConns, math.MaxInt32))
	poolCfg.MinConns = DefaultMinConnections
	poolCfg.MaxConnIdleTime = maxIdle
	poolCfg.MaxConnLifetime = maxLife

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", poolCfg.MaxConns)
	return pool, nil
}