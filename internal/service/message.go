package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// MessageService defines the use cases for visitor contact messages.
type MessageService interface {
	// Create persists the message, then bumps today's message counter.
	// The counter bump is best-effort and never fails the request.
	Create(ctx context.Context, text string) (*model.Message, error)

	// List returns all messages, newest first.
	List(ctx context.Context) ([]model.Message, error)
}

type messageService struct {
	repo   repository.MessageRepository
	ledger StatisticService
	logger *slog.Logger
}

// NewMessageService constructs a new MessageService.
func NewMessageService(repo repository.MessageRepository, ledger StatisticService, logger *slog.Logger) MessageService {
	return &messageService{repo: repo, ledger: ledger, logger: logger}
}

func (s *messageService) Create(ctx context.Context, text string) (*model.Message, error) {
	message := &model.Message{
		ID:        uuid.New().String(),
		Message:   text,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	if _, err := s.ledger.IncrementMessage(ctx); err != nil {
		s.logger.Error("message counter increment failed", "message_id", stored.ID, "error", err)
	}
	return stored, nil
}

func (s *messageService) List(ctx context.Context) ([]model.Message, error) {
	return s.repo.List(ctx)
}
