package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/model"
)

func TestMessagePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessagePostgres(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	msg := &model.Message{
		ID:        uuid.NewString(),
		Message:   "hello there",
		CreatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO messages").
			WithArgs(msg.ID, msg.Message, msg.CreatedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id", "message", "created_at"}).
				AddRow(msg.ID, msg.Message, msg.CreatedAt))

		got, err := repo.Create(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, "hello there", got.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO messages").
			WillReturnError(errors.New("insert failed"))

		got, err := repo.Create(context.Background(), msg)
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMessagePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMessagePostgres(db)
	now := time.Now().UTC()

	t.Run("returns messages newest first", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "message", "created_at"}).
			AddRow(uuid.NewString(), "second", now).
			AddRow(uuid.NewString(), "first", now.Add(-time.Hour))
		mock.ExpectQuery("FROM messages").WillReturnRows(rows)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Message)
		assert.Equal(t, "first", got[1].Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is a non-nil slice", func(t *testing.T) {
		mock.ExpectQuery("FROM messages").
			WillReturnRows(sqlmock.NewRows([]string{"id", "message", "created_at"}))

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("FROM messages").WillReturnError(errors.New("query failed"))

		got, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
