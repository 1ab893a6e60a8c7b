package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_WithoutReportFunction(t *testing.T) {
	s := New("0 21 * * *")
	require.NoError(t, s.Start())
	assert.False(t, s.IsRunning())
	s.Stop()
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New("every evening")
	s.SetReportFunction(func(ctx context.Context) error { return nil })
	assert.Error(t, s.Start())
	s.Stop()
}

func TestStart_RunsReport(t *testing.T) {
	var calls atomic.Int32
	s := New("@every 1s")
	s.SetReportFunction(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 3*time.Second, 20*time.Millisecond)
	s.Stop()
}

func TestStop_CancelsJobContext(t *testing.T) {
	s := New("0 21 * * *")
	s.Stop()
	assert.Error(t, s.ctx.Err())
}
