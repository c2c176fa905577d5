package repository

import (
	"context"

	"portfolioapi/internal/model"
)

// MessageRepository defines data access for contact messages.
type MessageRepository interface {
	// Create inserts a new message row and returns the stored record.
	Create(ctx context.Context, m *model.Message) (*model.Message, error)

	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.Message, error)
}
