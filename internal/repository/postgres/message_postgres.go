package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// MessagePostgres is a PostgreSQL implementation of repository.MessageRepository.
type MessagePostgres struct {
	db *sql.DB
}

// NewMessagePostgres creates a new MessagePostgres repository.
func NewMessagePostgres(db *sql.DB) *MessagePostgres {
	return &MessagePostgres{db: db}
}

var _ repository.MessageRepository = (*MessagePostgres)(nil)

// Create inserts a new message row and returns the stored record.
func (r *MessagePostgres) Create(ctx context.Context, m *model.Message) (*model.Message, error) {
	const q = `
		INSERT INTO messages (id, message, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q, m.ID, m.Message, m.CreatedAt)
	var out model.Message
	if err := row.Scan(&out.ID, &out.Message, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all messages, newest first.
func (r *MessagePostgres) List(ctx context.Context) ([]model.Message, error) {
	const q = `
		SELECT id, message, created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
