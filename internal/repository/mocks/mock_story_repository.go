package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(ctx context.Context, story *model.Story) (*model.Story, error) {
	args := m.Called(ctx, story)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Story), args.Error(1)
}

func (m *MockStoryRepository) FindByID(ctx context.Context, id string) (*model.Story, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Story), args.Error(1)
}

func (m *MockStoryRepository) ListByVisibility(ctx context.Context, visible bool) ([]model.Story, error) {
	args := m.Called(ctx, visible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Story), args.Error(1)
}

func (m *MockStoryRepository) AppendComment(ctx context.Context, storyID, commentID string) error {
	args := m.Called(ctx, storyID, commentID)
	return args.Error(0)
}

func (m *MockStoryRepository) RemoveComment(ctx context.Context, storyID, commentID string) error {
	args := m.Called(ctx, storyID, commentID)
	return args.Error(0)
}

func (m *MockStoryRepository) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
