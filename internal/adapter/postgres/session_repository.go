package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"digigrow-web/internal/core/port"
)

var _ port.SessionStorage = (*SessionRepository)(nil)

// SessionRepository implements port.SessionStorage on the session_storage
// table using pgxpool.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a new repository instance.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Get returns the value stored for key in the given session.
func (r *SessionRepository) Get(ctx context.Context, sessionID string, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM session_storage WHERE session_id = $1 AND key = $2`,
		sessionID, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts key and bumps updated_at so the janitor keeps the row.
func (r *SessionRepository) Set(ctx context.Context, sessionID string, key string, value string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO session_storage (session_id, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		sessionID, key, value,
	)
	if err != nil {
		return fmt.Errorf("set session key %q: %w", key, err)
	}
	return nil
}

// Delete removes keys from the session in a single statement.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`DELETE FROM session_storage WHERE session_id = $1 AND key = ANY($2)`,
		sessionID, keys,
	)
	if err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}

// PurgeIdle deletes every key that has not been written for olderThan and
// returns the number of rows removed.
func (r *SessionRepository) PurgeIdle(ctx context.Context, olderThan time.Duration) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM session_storage WHERE updated_at < $1`,
		time.Now().Add(-olderThan),
	)
	if err != nil {
		return 0, fmt.Errorf("purge idle sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
