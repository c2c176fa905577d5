package repository

import (
	"context"
	"time"

	"portfolioapi/internal/model"
)

// Counter names a statistics column that can be incremented. The values are
// the actual column names; implementations must accept only these constants.
type Counter string

const (
	CounterVisit   Counter = "today_visit"
	CounterComment Counter = "today_comment"
	CounterMessage Counter = "today_message"
)

// StatisticRepository defines data access for the day-bucketed counters.
//
// GetOrCreate and Increment must each be a single atomic upsert statement,
// never a read-then-write sequence: two concurrent increments on a day with
// no row yet must both land on the same row with no lost update.
type StatisticRepository interface {
	// GetOrCreate returns the row for the given day, inserting an all-zero
	// row first if none exists.
	GetOrCreate(ctx context.Context, day time.Time) (*model.Statistic, error)

	// Increment adds 1 to the named counter for the given day, creating the
	// row if needed, and returns the post-increment row.
	Increment(ctx context.Context, day time.Time, counter Counter) (*model.Statistic, error)

	// Range returns rows with date in [start, end] inclusive, newest first.
	Range(ctx context.Context, start, end time.Time) ([]model.Statistic, error)
}
