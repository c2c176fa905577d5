package scheduler

import (
	"context"
	"log/slog"
	"time"

	"portfolioapi/internal/model"
)

// StoryArchiver is the subset of the story service the sweeper drives.
type StoryArchiver interface {
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
}

// Ledger is the subset of the statistic service the sweeper drives.
type Ledger interface {
	GetOrCreateToday(ctx context.Context) (*model.Statistic, error)
}

const tickTimeout = time.Minute

// Sweeper is the process-owned background job runner. It archives expired
// stories on a fixed interval and pre-creates the zeroed statistics row at
// midnight in the configured timezone. Every tick is fire-and-forget: a
// failure is logged and the next tick retries the same idempotent call.
type Sweeper struct {
	archiver StoryArchiver
	ledger   Ledger
	interval time.Duration
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewSweeper creates a Sweeper archiving every interval and rolling the
// ledger at midnight in loc.
func NewSweeper(archiver StoryArchiver, ledger Ledger, interval time.Duration, loc *time.Location, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		archiver: archiver,
		ledger:   ledger,
		interval: interval,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Start runs the sweep loop until ctx is cancelled. It always returns the
// context's error; tick failures never stop the loop.
func (s *Sweeper) Start(ctx context.Context) error {
	s.logger.Info("sweeper started", "archive_interval", s.interval, "timezone", s.loc.String())

	// Run both jobs once on startup so a restart never waits a full interval
	// to catch up on overdue work.
	s.runArchive(ctx)
	s.runLedger(ctx)

	archiveTicker := time.NewTicker(s.interval)
	defer archiveTicker.Stop()

	midnight := time.NewTimer(s.untilNextMidnight())
	defer midnight.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return ctx.Err()
		case <-archiveTicker.C:
			s.runArchive(ctx)
		case <-midnight.C:
			s.runLedger(ctx)
			midnight.Reset(s.untilNextMidnight())
		}
	}
}

func (s *Sweeper) runArchive(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	if _, err := s.archiver.ArchiveExpired(tickCtx, s.now().UTC()); err != nil {
		s.logger.Error("archive sweep failed", "error", err)
	}
}

func (s *Sweeper) runLedger(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	if _, err := s.ledger.GetOrCreateToday(tickCtx); err != nil {
		s.logger.Error("daily ledger roll failed", "error", err)
	}
}

// untilNextMidnight returns the duration until the next midnight in the
// sweeper's timezone, never zero.
func (s *Sweeper) untilNextMidnight() time.Duration {
	now := s.now().In(s.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	d := next.Sub(now)
	if d <= 0 {
		d = 24 * time.Hour
	}
	return d
}
