package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// CommentRepository defines data access for comments.
type CommentRepository interface {
	// Create inserts a new comment row and returns the stored record.
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)

	// FindByID returns a comment by its ID. Returns sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*model.Comment, error)

	// ListByStory returns all comments for a story, newest first.
	ListByStory(ctx context.Context, storyID string) ([]model.Comment, error)

	// Delete removes a comment row by ID. Missing rows are not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByStory removes every comment referencing the story and returns
	// the number of rows removed.
	DeleteByStory(ctx context.Context, storyID string) (int64, error)
}
