package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// StatisticPostgres is a PostgreSQL implementation of repository.StatisticRepository.
//
// Every write is a single INSERT ... ON CONFLICT statement so that concurrent
// requests on a day with no row yet cannot lose updates or create duplicates.
type StatisticPostgres struct {
	db *sql.DB
}

// NewStatisticPostgres creates a new StatisticPostgres repository.
func NewStatisticPostgres(db *sql.DB) *StatisticPostgres {
	return &StatisticPostgres{db: db}
}

var _ repository.StatisticRepository = (*StatisticPostgres)(nil)

const statisticColumns = `date, today_visit, today_comment, today_message, created_at, updated_at`

func scanStatistic(row interface {
	Scan(dest ...any) error
}) (*model.Statistic, error) {
	var s model.Statistic
	if err := row.Scan(
		&s.Date,
		&s.TodayVisit,
		&s.TodayComment,
		&s.TodayMessage,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetOrCreate returns the row for the given day, inserting an all-zero row if
// none exists. The no-op DO UPDATE clause makes RETURNING yield the existing
// row on conflict.
func (r *StatisticPostgres) GetOrCreate(ctx context.Context, day time.Time) (*model.Statistic, error) {
	const q = `
		INSERT INTO statistics (date, today_visit, today_comment, today_message, created_at, updated_at)
		VALUES ($1, 0, 0, 0, now(), now())
		ON CONFLICT (date) DO UPDATE SET date = EXCLUDED.date
		RETURNING ` + statisticColumns
	return scanStatistic(r.db.QueryRowContext(ctx, q, day))
}

// Increment adds 1 to the named counter for the given day in one atomic
// upsert, creating the row with the counter already at 1 if it is missing.
func (r *StatisticPostgres) Increment(ctx context.Context, day time.Time, counter repository.Counter) (*model.Statistic, error) {
	var visit, comment, message int
	switch counter {
	case repository.CounterVisit:
		visit = 1
	case repository.CounterComment:
		comment = 1
	case repository.CounterMessage:
		message = 1
	default:
		return nil, fmt.Errorf("unknown counter %q", counter)
	}

	// counter is one of the whitelisted column name constants checked above.
	q := fmt.Sprintf(`
		INSERT INTO statistics (date, today_visit, today_comment, today_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (date) DO UPDATE SET %s = statistics.%s + 1, updated_at = now()
		RETURNING `+statisticColumns, counter, counter)

	return scanStatistic(r.db.QueryRowContext(ctx, q, day, visit, comment, message))
}

// Range returns rows with date in [start, end] inclusive, newest first.
func (r *StatisticPostgres) Range(ctx context.Context, start, end time.Time) ([]model.Statistic, error) {
	const q = `
		SELECT ` + statisticColumns + `
		FROM statistics
		WHERE date >= $1 AND date <= $2
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]model.Statistic, 0)
	for rows.Next() {
		s, err := scanStatistic(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}
