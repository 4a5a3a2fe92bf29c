package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/logging"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoRows      = errors.New("no rows in result set")
	ErrStoreFailed = errors.New("could not store data")
)

type Config struct {
	connStr string
}

func (c Config) ConnStr() string {
	return c.connStr
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		connStr: fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, dbname, sslmode),
	}
}

// NewConfigFromConnStr wraps a complete connection string, such as the
// contents of a DATABASE_URL environment variable.
func NewConfigFromConnStr(connStr string) Config {
	return Config{connStr: connStr}
}

// Storage is created once at startup and shared by all requests. The
// underlying pool is created lazily under a guard: if creation fails the
// pool stays unset and the next caller retries, so a database that is
// unavailable at startup does not take the process down.
type Storage struct {
	config Config

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func New(ctx context.Context, config Config) *Storage {
	s := &Storage{config: config}

	if err := s.Initialize(ctx); err != nil {
		logger := logging.GetLoggerFromContext(ctx)
		logger.Warn().Err(err).Msg("database not reachable at startup, will retry on first request")
	}

	return s
}

// Initialize makes sure the pool exists and the points table is in place.
func (s *Storage) Initialize(ctx context.Context) error {
	_, err := s.db(ctx)
	return err
}

func (s *Storage) db(ctx context.Context) (*pgxpool.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		return s.pool, nil
	}

	pool, err := pgxpool.New(ctx, s.config.ConnStr())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	s.pool = pool

	return s.pool, nil
}

func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS points (
			id   BIGSERIAL PRIMARY KEY,
			geom geometry(Point, 4326) NOT NULL
		);
	`)
	return err
}

func (s *Storage) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}
