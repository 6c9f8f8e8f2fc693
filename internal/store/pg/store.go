// Package pg implements the repository contracts on PostgreSQL via pgxpool.
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/littlejohn/internal/domain/repository"
)

// Options tunes the connection pool.
type Options struct {
	MaxConns        int
	MinConns        int
	ConnMaxLifetime time.Duration
}

// Store owns the pgx pool and hands out repositories bound to it.
type Store struct {
	pool   *pgxpool.Pool
	users  *userRepo
	tokens *tokenRepo
}

// New connects to PostgreSQL and verifies the connection with a ping.
func New(ctx context.Context, dsn string, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg: parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = int32(opts.MaxConns)
	}
	if opts.MinConns > 0 {
		cfg.MinConns = int32(opts.MinConns)
	}
	if opts.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = opts.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pg: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping: %w", err)
	}

	return &Store{
		pool:   pool,
		users:  &userRepo{pool: pool},
		tokens: &tokenRepo{pool: pool},
	}, nil
}

// Users returns the user repository.
func (s *Store) Users() repository.UserRepository { return s.users }

// Tokens returns the refresh-token repository.
func (s *Store) Tokens() repository.TokenRepository { return s.tokens }

// Ping verifies database connectivity; used by readiness.
func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Pool exposes the underlying pool for metrics collectors.
func (s *Store) Pool() *pgxpool.Pool { return s.pool }

// Close releases the pool.
func (s *Store) Close() { s.pool.Close() }
