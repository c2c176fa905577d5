package repository

import (
	"context"
	"time"

	"portfolioapi/internal/model"
)

// StoryRepository defines data access for stories using SQL queries only.
// No business logic here — strictly persistence operations. The database
// enforces no referential integrity between stories and comments; callers own
// the cleanup ordering.
type StoryRepository interface {
	// Create inserts a new story row and returns the stored record.
	Create(ctx context.Context, story *model.Story) (*model.Story, error)

	// FindByID returns a story by its ID. Returns sql.ErrNoRows if absent.
	FindByID(ctx context.Context, id string) (*model.Story, error)

	// ListByVisibility returns stories with the given visibility, newest first.
	ListByVisibility(ctx context.Context, visible bool) ([]model.Story, error)

	// AppendComment adds a comment id to the story's weak reference list.
	AppendComment(ctx context.Context, storyID, commentID string) error

	// RemoveComment removes a comment id from the story's weak reference list.
	// Removing from a missing story is a no-op.
	RemoveComment(ctx context.Context, storyID, commentID string) error

	// ArchiveExpired flips every visible story whose expired_at is at or
	// before now to invisible, in a single statement. Returns the number of
	// rows changed; re-running with the same now changes zero rows.
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)

	// Delete removes a story row by ID. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}
