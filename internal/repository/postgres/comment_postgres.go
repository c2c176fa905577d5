package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

// Create inserts a new comment row and returns the stored record.
func (r *CommentPostgres) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (id, story_id, comment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, story_id, comment, created_at
	`
	row := r.db.QueryRowContext(ctx, q, c.ID, c.StoryID, c.Comment, c.CreatedAt)
	var out model.Comment
	if err := row.Scan(&out.ID, &out.StoryID, &out.Comment, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single comment by its ID.
func (r *CommentPostgres) FindByID(ctx context.Context, id string) (*model.Comment, error) {
	const q = `SELECT id, story_id, comment, created_at FROM comments WHERE id = $1`
	var c model.Comment
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.StoryID, &c.Comment, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByStory returns all comments for a story, newest first.
func (r *CommentPostgres) ListByStory(ctx context.Context, storyID string) ([]model.Comment, error) {
	const q = `
		SELECT id, story_id, comment, created_at
		FROM comments
		WHERE story_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, storyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.StoryID, &c.Comment, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment by ID. It does not return an error if the row does not exist.
func (r *CommentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM comments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// DeleteByStory removes every comment referencing the story.
func (r *CommentPostgres) DeleteByStory(ctx context.Context, storyID string) (int64, error) {
	const q = `DELETE FROM comments WHERE story_id = $1`
	res, err := r.db.ExecContext(ctx, q, storyID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
