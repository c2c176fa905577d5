package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/model"
	serviceMocks "portfolioapi/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSweeper_RunsBothJobsOnStartup(t *testing.T) {
	archiver := new(serviceMocks.MockStoryService)
	ledger := new(serviceMocks.MockStatisticService)

	archiver.On("ArchiveExpired", mock.Anything, mock.Anything).Return(int64(0), nil)
	ledger.On("GetOrCreateToday", mock.Anything).Return(&model.Statistic{}, nil)

	s := NewSweeper(archiver, ledger, time.Hour, time.UTC, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	// Give the startup pass time to run, then stop the loop.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}

	archiver.AssertNumberOfCalls(t, "ArchiveExpired", 1)
	ledger.AssertNumberOfCalls(t, "GetOrCreateToday", 1)
}

func TestSweeper_ArchivesOnEveryTick(t *testing.T) {
	archiver := new(serviceMocks.MockStoryService)
	ledger := new(serviceMocks.MockStatisticService)

	archiver.On("ArchiveExpired", mock.Anything, mock.Anything).Return(int64(2), nil)
	ledger.On("GetOrCreateToday", mock.Anything).Return(&model.Statistic{}, nil)

	s := NewSweeper(archiver, ledger, 10*time.Millisecond, time.UTC, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	require.NoError(t, func() error {
		select {
		case <-done:
			return nil
		case <-time.After(time.Second):
			return errors.New("sweeper did not stop")
		}
	}())

	// Startup pass plus several ticks; the exact count depends on timing.
	calls := len(archiver.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestSweeper_TickFailureKeepsTheLoopAlive(t *testing.T) {
	archiver := new(serviceMocks.MockStoryService)
	ledger := new(serviceMocks.MockStatisticService)

	archiver.On("ArchiveExpired", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))
	ledger.On("GetOrCreateToday", mock.Anything).Return(nil, errors.New("db down"))

	s := NewSweeper(archiver, ledger, 10*time.Millisecond, time.UTC, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}

	// Failures are logged, never fatal: the loop kept ticking.
	assert.GreaterOrEqual(t, len(archiver.Calls), 2)
}

func TestSweeper_UntilNextMidnight(t *testing.T) {
	s := NewSweeper(nil, nil, time.Hour, time.UTC, testLogger())

	t.Run("mid-day", func(t *testing.T) {
		s.now = func() time.Time { return time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC) }
		assert.Equal(t, 6*time.Hour, s.untilNextMidnight())
	})

	t.Run("exactly midnight waits a full day", func(t *testing.T) {
		s.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
		assert.Equal(t, 24*time.Hour, s.untilNextMidnight())
	})
}
