package postgres_test

import (
	"context"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digigrow-web/internal/adapter/postgres"
	"digigrow-web/internal/config/configs"
	"digigrow-web/internal/db"
)

// newRepository connects to the database named by PSQL_TEST_ADDRESS and
// applies migrations. The test is skipped when the variable is unset.
func newRepository(t *testing.T) *postgres.SessionRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return postgres.NewSessionRepository(pool)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	sid := uuid.NewString()

	_, ok, err := repo.Get(ctx, sid, "digigrow_token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, sid, "digigrow_token", "a"))
	require.NoError(t, repo.Set(ctx, sid, "digigrow_token", "b"))
	v, ok, err := repo.Get(ctx, sid, "digigrow_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok, err = repo.Get(ctx, uuid.NewString(), "digigrow_token")
	require.NoError(t, err)
	assert.False(t, ok, "sessions must not share keys")

	require.NoError(t, repo.Set(ctx, sid, "digigrow_user", "{}"))
	require.NoError(t, repo.Delete(ctx, sid, []string{"digigrow_token", "digigrow_user", "missing"}))
	_, ok, err = repo.Get(ctx, sid, "digigrow_user")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepository_PurgeIdle(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, repo.Set(ctx, sid, "digigrow_token", "a"))
	_, err := repo.PurgeIdle(ctx, time.Hour)
	require.NoError(t, err)
	_, ok, err := repo.Get(ctx, sid, "digigrow_token")
	require.NoError(t, err)
	assert.True(t, ok, "fresh rows survive")

	time.Sleep(10 * time.Millisecond)
	n, err := repo.PurgeIdle(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))
	_, ok, err = repo.Get(ctx, sid, "digigrow_token")
	require.NoError(t, err)
	assert.False(t, ok)
}
