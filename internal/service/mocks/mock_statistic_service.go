package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolioapi/internal/model"
)

type MockStatisticService struct {
	mock.Mock
}

func (m *MockStatisticService) GetOrCreateToday(ctx context.Context) (*model.Statistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticService) IncrementVisit(ctx context.Context) (*model.Statistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticService) IncrementComment(ctx context.Context) (*model.Statistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticService) IncrementMessage(ctx context.Context) (*model.Statistic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Statistic), args.Error(1)
}

func (m *MockStatisticService) GetRange(ctx context.Context, startDate, endDate string) ([]model.Statistic, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Statistic), args.Error(1)
}
