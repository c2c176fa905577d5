package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

type MockStatisticRepository struct {
	mock.Mock
}

func (m *MockStatisticRepository) GetOrCreate(ctx context.Context, day time.Time) (*model.Statistic, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticRepository) Increment(ctx context.Context, day time.Time, counter repository.Counter) (*model.Statistic, error) {
	args := m.Called(ctx, day, counter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticRepository) Range(ctx context.Context, start, end time.Time) ([]model.Statistic, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Statistic), args.Error(1)
}
