package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// StoryPostgres is a PostgreSQL implementation of repository.StoryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type StoryPostgres struct {
	db *sql.DB
}

// NewStoryPostgres creates a new StoryPostgres repository.
func NewStoryPostgres(db *sql.DB) *StoryPostgres {
	return &StoryPostgres{db: db}
}

var _ repository.StoryRepository = (*StoryPostgres)(nil)

const storyColumns = `id, photo_url, storage_path, caption, location, is_visible, expired_at, comment_ids, created_at, updated_at`

func scanStory(row interface {
	Scan(dest ...any) error
}) (*model.Story, error) {
	var s model.Story
	if err := row.Scan(
		&s.ID,
		&s.PhotoURL,
		&s.StoragePath,
		&s.Caption,
		&s.Location,
		&s.IsVisible,
		&s.ExpiredAt,
		pq.Array(&s.CommentIDs),
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new story row and returns the stored record.
func (r *StoryPostgres) Create(ctx context.Context, story *model.Story) (*model.Story, error) {
	const q = `
		INSERT INTO stories (id, photo_url, storage_path, caption, location, is_visible, expired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + storyColumns
	row := r.db.QueryRowContext(ctx, q,
		story.ID,
		story.PhotoURL,
		story.StoragePath,
		story.Caption,
		story.Location,
		story.IsVisible,
		story.ExpiredAt,
		story.CreatedAt,
	)
	return scanStory(row)
}

// FindByID fetches a single story by its ID.
func (r *StoryPostgres) FindByID(ctx context.Context, id string) (*model.Story, error) {
	const q = `SELECT ` + storyColumns + ` FROM stories WHERE id = $1`
	return scanStory(r.db.QueryRowContext(ctx, q, id))
}

// ListByVisibility returns stories filtered by is_visible, newest first.
func (r *StoryPostgres) ListByVisibility(ctx context.Context, visible bool) ([]model.Story, error) {
	const q = `
		SELECT ` + storyColumns + `
		FROM stories
		WHERE is_visible = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, visible)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stories := make([]model.Story, 0)
	for rows.Next() {
		s, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stories, nil
}

// AppendComment adds a comment id to the story's weak reference list.
func (r *StoryPostgres) AppendComment(ctx context.Context, storyID, commentID string) error {
	const q = `
		UPDATE stories
		SET comment_ids = array_append(comment_ids, $2), updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, storyID, commentID)
	return err
}

// RemoveComment removes a comment id from the story's weak reference list.
func (r *StoryPostgres) RemoveComment(ctx context.Context, storyID, commentID string) error {
	const q = `
		UPDATE stories
		SET comment_ids = array_remove(comment_ids, $2), updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, storyID, commentID)
	return err
}

// ArchiveExpired flips every visible story past its expiry to invisible in a
// single conditional update. The predicate on is_visible makes the statement
// idempotent under repeated runs with the same timestamp.
func (r *StoryPostgres) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE stories
		SET is_visible = FALSE, updated_at = now()
		WHERE is_visible = TRUE AND expired_at <= $1
	`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a story by ID. It does not return an error if the row does not exist.
func (r *StoryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM stories WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
