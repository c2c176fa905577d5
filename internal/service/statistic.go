package service

import (
	"context"
	"fmt"
	"time"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

const dateLayout = "2006-01-02"

// StatisticService is the day-bucketed counter ledger. One record exists per
// calendar day in the service's timezone; counters only ever go up. The
// ledger is best-effort analytics, not a source of truth.
type StatisticService interface {
	// GetOrCreateToday returns today's record, creating an all-zero one if it
	// does not exist yet. Safe under concurrent calls: the underlying write
	// is a single upsert, never a read-then-write.
	GetOrCreateToday(ctx context.Context) (*model.Statistic, error)

	// IncrementVisit adds 1 to today's visit counter and returns the
	// post-increment record, creating the day row atomically if needed.
	IncrementVisit(ctx context.Context) (*model.Statistic, error)

	// IncrementComment adds 1 to today's comment counter.
	IncrementComment(ctx context.Context) (*model.Statistic, error)

	// IncrementMessage adds 1 to today's message counter.
	IncrementMessage(ctx context.Context) (*model.Statistic, error)

	// GetRange returns records with date in [start, end] inclusive, newest
	// first. Dates are YYYY-MM-DD; ErrInvalidDate when either fails to parse,
	// ErrInvalidRange when start is after end.
	GetRange(ctx context.Context, startDate, endDate string) ([]model.Statistic, error)
}

type statisticService struct {
	repo repository.StatisticRepository
	loc  *time.Location
	now  func() time.Time
}

// NewStatisticService constructs a StatisticService bucketing days in loc.
func NewStatisticService(repo repository.StatisticRepository, loc *time.Location) StatisticService {
	return &statisticService{repo: repo, loc: loc, now: time.Now}
}

// today normalizes the current instant to midnight in the configured
// timezone. Every ledger operation buckets through here so that a day means
// the same thing across increments, reads, and the midnight sweep.
func (s *statisticService) today() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *statisticService) GetOrCreateToday(ctx context.Context) (*model.Statistic, error) {
	stat, err := s.repo.GetOrCreate(ctx, s.today())
	if err != nil {
		return nil, fmt.Errorf("get or create today: %w", err)
	}
	return stat, nil
}

func (s *statisticService) IncrementVisit(ctx context.Context) (*model.Statistic, error) {
	return s.increment(ctx, repository.CounterVisit)
}

func (s *statisticService) IncrementComment(ctx context.Context) (*model.Statistic, error) {
	return s.increment(ctx, repository.CounterComment)
}

func (s *statisticService) IncrementMessage(ctx context.Context) (*model.Statistic, error) {
	return s.increment(ctx, repository.CounterMessage)
}

func (s *statisticService) increment(ctx context.Context, counter repository.Counter) (*model.Statistic, error) {
	stat, err := s.repo.Increment(ctx, s.today(), counter)
	if err != nil {
		return nil, fmt.Errorf("increment %s: %w", counter, err)
	}
	return stat, nil
}

func (s *statisticService) GetRange(ctx context.Context, startDate, endDate string) ([]model.Statistic, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidDate, startDate)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", ErrInvalidDate, endDate)
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	return s.repo.Range(ctx, start, end)
}
