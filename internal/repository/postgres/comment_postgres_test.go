package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"portfolioapi/internal/model"
)

var commentTestColumns = []string{"id", "story_id", "comment", "created_at"}

func TestCommentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	comment := &model.Comment{
		ID:        "test-uuid",
		StoryID:   "story-uuid",
		Comment:   "nice shot",
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(commentTestColumns).
		AddRow(comment.ID, comment.StoryID, comment.Comment, comment.CreatedAt)

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(comment.ID, comment.StoryID, comment.Comment, comment.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, comment)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, comment.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(commentTestColumns).
			AddRow("test-id", "story-1", "hello", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		comment, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "story-1", comment.StoryID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM comments WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		comment, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, comment)
	})
}

func TestCommentPostgres_ListByStory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(commentTestColumns).
			AddRow("c2", "story-1", "second", time.Now()).
			AddRow("c1", "story-1", "first", time.Now())

		mock.ExpectQuery("WHERE story_id = ?").
			WithArgs("story-1").
			WillReturnRows(rows)

		comments, err := repo.ListByStory(ctx, "story-1")

		assert.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("story without comments yields a non-nil slice", func(t *testing.T) {
		mock.ExpectQuery("WHERE story_id = ?").
			WithArgs("story-2").
			WillReturnRows(sqlmock.NewRows(commentTestColumns))

		comments, err := repo.ListByStory(ctx, "story-2")

		assert.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	})
}

func TestCommentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCommentPostgres(db)
	ctx := context.Background()

	t.Run("single comment", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM comments WHERE id = ?").
			WithArgs("test-id").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "test-id"))
	})

	t.Run("by story returns the removed count", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM comments WHERE story_id = ?").
			WithArgs("story-1").
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.DeleteByStory(ctx, "story-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
