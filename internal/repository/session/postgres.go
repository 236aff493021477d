package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgres returns a Store backed by the session_entries table.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresStore{pool: pool, logger: logger}
}

func (s *postgresStore) Load(ctx context.Context, sessionID string) (map[string]string, error) {
	const q = `
SELECT key, value
FROM session_entries
WHERE session_id = $1
`
	rows, err := s.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			s.logger.Warn("session repo: scan entry", zap.String("session_id", sessionID), zap.Error(err))
			return nil, err
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return out, nil
}

func (s *postgresStore) Set(ctx context.Context, sessionID, key, value string) error {
	const q = `
INSERT INTO session_entries (session_id, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (session_id, key) DO UPDATE
SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`
	if _, err := s.pool.Exec(ctx, q, sessionID, key, value); err != nil {
		return fmt.Errorf("set session entry %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	const q = `DELETE FROM session_entries WHERE session_id = $1 AND key = ANY($2)`
	if _, err := s.pool.Exec(ctx, q, sessionID, keys); err != nil {
		return fmt.Errorf("delete session entries: %w", err)
	}
	return nil
}

func (s *postgresStore) Expire(ctx context.Context, ttl time.Duration) (int64, error) {
	const q = `
DELETE FROM session_entries
WHERE session_id IN (
    SELECT session_id
    FROM session_entries
    GROUP BY session_id
    HAVING max(updated_at) < $1
)
`
	tag, err := s.pool.Exec(ctx, q, time.Now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
