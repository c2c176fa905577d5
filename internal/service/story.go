package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	"portfolioapi/internal/storage"
)

// storyTTL is how long a story stays visible after creation.
const storyTTL = 24 * time.Hour

// StoryService owns the story lifecycle (Active -> Archived -> Deleted) and
// both sides of the story<->comment weak reference. No other caller mutates
// the comment list or comment rows, which is what keeps the two sides
// consistent without database-enforced integrity.
type StoryService interface {
	// Create uploads the photo and inserts the story with a 24h expiry.
	// Fails with ErrPhotoRequired when no photo is supplied. The uploaded
	// object is removed again if the insert fails.
	Create(ctx context.Context, photo io.Reader, originalFilename, contentType string, size int64, caption, location string) (*model.Story, error)

	// List returns visible stories newest-first with comments populated.
	List(ctx context.Context) ([]model.Story, error)

	// ListArchived returns archived stories newest-first.
	ListArchived(ctx context.Context) ([]model.Story, error)

	// Get returns one story with comments populated.
	Get(ctx context.Context, id string) (*model.Story, error)

	// Delete removes the story's comments, then its photo blob (best-effort),
	// then the story row. A crash mid-sequence can orphan a blob or comment
	// but never leaves a surviving story with dangling references.
	Delete(ctx context.Context, id string) error

	// AttachComment creates a comment on the story, appends its id to the
	// story's comment list, and bumps today's comment counter. The counter
	// bump is best-effort; losing it on a crash between the writes is an
	// accepted gap since statistics are analytics, not a source of truth.
	AttachComment(ctx context.Context, storyID, text string) (*model.Comment, error)

	// ListComments returns a story's comments, newest first.
	ListComments(ctx context.Context, storyID string) ([]model.Comment, error)

	// RemoveComment deletes a comment and unlinks it from its owning story.
	RemoveComment(ctx context.Context, commentID string) error

	// ArchiveExpired flips every visible story past its expiry to archived in
	// one bulk conditional update and returns the number of stories flipped.
	// Idempotent: a second run with the same now flips zero.
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
}

type storyService struct {
	store    storage.Storage
	stories  repository.StoryRepository
	comments repository.CommentRepository
	ledger   StatisticService
	logger   *slog.Logger
}

// NewStoryService constructs a new StoryService.
func NewStoryService(
	store storage.Storage,
	stories repository.StoryRepository,
	comments repository.CommentRepository,
	ledger StatisticService,
	logger *slog.Logger,
) StoryService {
	return &storyService{
		store:    store,
		stories:  stories,
		comments: comments,
		ledger:   ledger,
		logger:   logger,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *storyService) Create(ctx context.Context, photo io.Reader, originalFilename, contentType string, size int64, caption, location string) (*model.Story, error) {
	if photo == nil {
		return nil, ErrPhotoRequired
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("stories", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, photo, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	now := time.Now().UTC()
	story := &model.Story{
		ID:          uuid.New().String(),
		PhotoURL:    s.store.PublicURL(objInfo.Key),
		StoragePath: objInfo.Key,
		Caption:     optional(caption),
		Location:    optional(location),
		IsVisible:   true,
		ExpiredAt:   now.Add(storyTTL),
		CreatedAt:   now,
	}

	stored, err := s.stories.Create(ctx, story)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	stored.Comments = []model.Comment{}
	return stored, nil
}

func (s *storyService) List(ctx context.Context) ([]model.Story, error) {
	return s.listByVisibility(ctx, true)
}

func (s *storyService) ListArchived(ctx context.Context) ([]model.Story, error) {
	return s.listByVisibility(ctx, false)
}

func (s *storyService) listByVisibility(ctx context.Context, visible bool) ([]model.Story, error) {
	stories, err := s.stories.ListByVisibility(ctx, visible)
	if err != nil {
		return nil, err
	}
	for i := range stories {
		comments, err := s.comments.ListByStory(ctx, stories[i].ID)
		if err != nil {
			return nil, err
		}
		stories[i].Comments = comments
	}
	return stories, nil
}

func (s *storyService) Get(ctx context.Context, id string) (*model.Story, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	comments, err := s.comments.ListByStory(ctx, id)
	if err != nil {
		return nil, err
	}
	story.Comments = comments
	return story, nil
}

func (s *storyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// Comments and blob go first so a crash mid-sequence leaves at most an
	// orphan, never a surviving story pointing at deleted dependents.
	if _, err := s.comments.DeleteByStory(ctx, story.ID); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := s.store.Delete(ctx, story.StoragePath); err != nil {
		// Blob deletion never blocks the record deletion.
		s.logger.Error("delete story photo failed",
			"story_id", story.ID,
			"storage_path", story.StoragePath,
			"error", err,
		)
	}
	return s.stories.Delete(ctx, story.ID)
}

func (s *storyService) AttachComment(ctx context.Context, storyID, text string) (*model.Comment, error) {
	if storyID == "" {
		return nil, ErrIDRequired
	}
	story, err := s.stories.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		StoryID:   story.ID,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if err := s.stories.AppendComment(ctx, story.ID, stored.ID); err != nil {
		return nil, fmt.Errorf("link comment to story: %w", err)
	}

	if _, err := s.ledger.IncrementComment(ctx); err != nil {
		s.logger.Error("comment counter increment failed", "story_id", story.ID, "error", err)
	}
	return stored, nil
}

func (s *storyService) ListComments(ctx context.Context, storyID string) ([]model.Comment, error) {
	if storyID == "" {
		return nil, ErrIDRequired
	}
	return s.comments.ListByStory(ctx, storyID)
}

func (s *storyService) RemoveComment(ctx context.Context, commentID string) error {
	if commentID == "" {
		return ErrIDRequired
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// Unlink from the owning story first; unlinking from an already deleted
	// story is a no-op.
	if err := s.stories.RemoveComment(ctx, comment.StoryID, comment.ID); err != nil {
		return fmt.Errorf("unlink comment: %w", err)
	}
	return s.comments.Delete(ctx, comment.ID)
}

func (s *storyService) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.stories.ArchiveExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("archive expired stories: %w", err)
	}
	if count > 0 {
		s.logger.Info("archived expired stories", "count", count)
	}
	return count, nil
}
