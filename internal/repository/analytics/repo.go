// Package analytics executes synthesized SQL against the NFL Postgres
// store. Queries run in a read-only transaction so a malformed or hostile
// statement cannot write.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kailas-cloud/gridiron/internal/domain"
)

// Repo implements usecase/chat.Executor.
type Repo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Config holds the analytical store settings.
type Config struct {
	DSN          string
	MaxConns     int
	QueryTimeout time.Duration
}

// Open connects to the analytical store.
func Open(ctx context.Context, cfg Config) (*Repo, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse analytics dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect analytics store: %w", err)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Repo{pool: pool, timeout: timeout}, nil
}

// Query runs one SELECT inside a read-only transaction and collects the
// full result set.
func (r *Repo) Query(ctx context.Context, sql string) (domain.Rows, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return domain.Rows{}, fmt.Errorf("begin read-only tx: %w: %w", err, domain.ErrExecutionFailed)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return domain.Rows{}, fmt.Errorf("query: %w: %w", err, domain.ErrExecutionFailed)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := domain.Rows{Columns: make([]string, len(fields))}
	for i, f := range fields {
		out.Columns[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return domain.Rows{}, fmt.Errorf("read row: %w: %w", err, domain.ErrExecutionFailed)
		}
		out.Records = append(out.Records, values)
	}
	if err := rows.Err(); err != nil {
		return domain.Rows{}, fmt.Errorf("scan rows: %w: %w", err, domain.ErrExecutionFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Rows{}, fmt.Errorf("commit read-only tx: %w: %w", err, domain.ErrExecutionFailed)
	}

	return out, nil
}

// Ping verifies connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("analytics ping: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r *Repo) Close() {
	r.pool.Close()
}
