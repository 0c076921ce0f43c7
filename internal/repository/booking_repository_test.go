package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL DEFAULT '[]'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	require.NoError(t, err)

	repo := NewBookingRepository(pool, zap.NewNop())
	repo.key = "bookings_test"
	defer pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, repo.key)

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.WriteAll(ctx, sampleBookings()))
	got, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "booking-1", got[0].ID)
	assert.True(t, sampleBookings()[0].CreatedAt.Equal(got[0].CreatedAt))

	require.NoError(t, repo.WriteAll(ctx, nil))
	got, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
