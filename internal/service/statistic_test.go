package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
	repoMocks "portfolioapi/internal/repository/mocks"
)

func TestStatisticService_TodayBucketing(t *testing.T) {
	ctx := context.Background()

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2025-06-01 23:30 UTC is already 2025-06-02 06:30 in Jakarta, so the
	// bucket must be the Jakarta day, not the UTC one.
	instant := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)
	wantDay := time.Date(2025, 6, 2, 0, 0, 0, 0, jakarta)

	mRepo := new(repoMocks.MockStatisticRepository)
	svc := &statisticService{
		repo: mRepo,
		loc:  jakarta,
		now:  func() time.Time { return instant },
	}

	mRepo.On("GetOrCreate", ctx, wantDay).Return(&model.Statistic{Date: wantDay}, nil)

	stat, err := svc.GetOrCreateToday(ctx)

	assert.NoError(t, err)
	assert.True(t, stat.Date.Equal(wantDay))
	mRepo.AssertExpectations(t)
}

func TestStatisticService_Increment(t *testing.T) {
	ctx := context.Background()
	instant := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		call    func(svc StatisticService) (*model.Statistic, error)
		counter repository.Counter
	}{
		{
			name:    "visit",
			call:    func(svc StatisticService) (*model.Statistic, error) { return svc.IncrementVisit(ctx) },
			counter: repository.CounterVisit,
		},
		{
			name:    "comment",
			call:    func(svc StatisticService) (*model.Statistic, error) { return svc.IncrementComment(ctx) },
			counter: repository.CounterComment,
		},
		{
			name:    "message",
			call:    func(svc StatisticService) (*model.Statistic, error) { return svc.IncrementMessage(ctx) },
			counter: repository.CounterMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockStatisticRepository)
			svc := &statisticService{
				repo: mRepo,
				loc:  time.UTC,
				now:  func() time.Time { return instant },
			}

			mRepo.On("Increment", ctx, day, tt.counter).
				Return(&model.Statistic{Date: day, TodayVisit: 1}, nil)

			stat, err := tt.call(svc)

			assert.NoError(t, err)
			assert.NotNil(t, stat)
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockStatisticRepository)
		svc := &statisticService{
			repo: mRepo,
			loc:  time.UTC,
			now:  func() time.Time { return instant },
		}

		mRepo.On("Increment", ctx, day, repository.CounterVisit).
			Return(nil, errors.New("db fail"))

		_, err := svc.IncrementVisit(ctx)

		assert.Error(t, err)
		mRepo.AssertExpectations(t)
	})
}

func TestStatisticService_GetRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		startDate  string
		endDate    string
		setupMocks func(mRepo *repoMocks.MockStatisticRepository)
		wantErr    error
		wantLen    int
	}{
		{
			name:      "happy path",
			startDate: "2025-06-01",
			endDate:   "2025-06-03",
			setupMocks: func(mRepo *repoMocks.MockStatisticRepository) {
				start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
				end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
				mRepo.On("Range", ctx, start, end).Return([]model.Statistic{
					{Date: end}, {Date: start},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "single day range",
			startDate: "2025-06-01",
			endDate:   "2025-06-01",
			setupMocks: func(mRepo *repoMocks.MockStatisticRepository) {
				day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
				mRepo.On("Range", ctx, day, day).Return([]model.Statistic{{Date: day}}, nil)
			},
			wantLen: 1,
		},
		{
			name:       "invalid start date",
			startDate:  "06/01/2025",
			endDate:    "2025-06-03",
			setupMocks: func(mRepo *repoMocks.MockStatisticRepository) {},
			wantErr:    ErrInvalidDate,
		},
		{
			name:       "invalid end date",
			startDate:  "2025-06-01",
			endDate:    "not-a-date",
			setupMocks: func(mRepo *repoMocks.MockStatisticRepository) {},
			wantErr:    ErrInvalidDate,
		},
		{
			name:       "start after end",
			startDate:  "2025-06-03",
			endDate:    "2025-06-01",
			setupMocks: func(mRepo *repoMocks.MockStatisticRepository) {},
			wantErr:    ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockStatisticRepository)
			svc := NewStatisticService(mRepo, time.UTC)

			tt.setupMocks(mRepo)

			stats, err := svc.GetRange(ctx, tt.startDate, tt.endDate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.Len(t, stats, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
