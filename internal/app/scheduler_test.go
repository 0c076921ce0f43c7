package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingRefresher struct {
	calls int32
	err   error
}

func (r *countingRefresher) Refresh(_ context.Context) error {
	atomic.AddInt32(&r.calls, 1)
	return r.err
}

func TestScheduler_RefreshesOnStart(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, "@every 1h", zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&r.calls))
}

func TestScheduler_FailedRefreshDoesNotStopStart(t *testing.T) {
	r := &countingRefresher{err: errors.New("directory down")}
	s := NewScheduler(r, "*/30 * * * *", zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	s.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&r.calls))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, "not a cron spec", zap.NewNop())

	assert.Error(t, s.Start(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&r.calls))
}

func TestNewLogger(t *testing.T) {
	assert.NotNil(t, NewLogger("production"))
	assert.NotNil(t, NewLogger("development"))
}
