package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "conf-ticket-pricing/internal/cache/mocks"
	"conf-ticket-pricing/internal/clock"
	"conf-ticket-pricing/internal/pricing"
	repoMocks "conf-ticket-pricing/internal/repository/mocks"
	"conf-ticket-pricing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDate(month, day int) time.Time {
	return time.Date(2026, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// testCatalog 測試用階段表：early 有階段上限、standard 為預設、vip 有全售期上限
func testCatalog(t *testing.T) *pricing.Catalog {
	t.Helper()
	stages := []pricing.Stage{
		{
			ID: pricing.StageEarly, DisplayName: "Early Bird",
			StartDate: testDate(1, 1), EndDate: testDate(5, 15), Priority: 1,
			StockLimit: &pricing.StockLimit{
				StageLimit: 30,
				Categories: []pricing.Category{pricing.CategoryStandard, pricing.CategoryVIP},
			},
		},
		{
			ID: pricing.StageStandard, DisplayName: "Standard",
			StartDate: testDate(5, 15), EndDate: testDate(9, 1), Priority: 2,
		},
	}
	catalog, err := pricing.NewCatalog(stages, pricing.StageStandard, map[pricing.Category]int{pricing.CategoryVIP: 15})
	require.NoError(t, err)
	return catalog
}

func setupPricingService(t *testing.T, now time.Time) (
	service.PricingService,
	*repoMocks.MockSalesRepository,
	*cacheMocks.MockStockCountsCache,
) {
	repo := repoMocks.NewMockSalesRepository()
	countCache := cacheMocks.NewMockStockCountsCache()
	catalog := testCatalog(t)
	svc := service.NewPricingService(
		repo,
		countCache,
		pricing.NewStageResolver(catalog),
		pricing.NewStockCalculator(catalog),
		clock.NewFixed(now),
		5*time.Second,
	)
	return svc, repo, countCache
}

func TestPricingService_GetPricing(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - cache hit skips the ledger", func(t *testing.T) {
		svc, repo, countCache := setupPricingService(t, testDate(3, 1))

		counts := &pricing.StockCounts{
			ByStage:    pricing.StageCounts{pricing.StageEarly: 12},
			ByCategory: pricing.CategoryCounts{pricing.CategoryVIP: 10},
		}
		countCache.On("Get", mock.Anything).Return(counts, nil).Once()

		response, err := svc.GetPricing(ctx)

		require.NoError(t, err)
		assert.Equal(t, "early", response.Stage.ID)
		assert.Equal(t, "Early Bird", response.Stage.DisplayName)
		assert.Equal(t, testDate(5, 15), response.Stage.EndsAt)

		standard := response.Stock["standard"]
		require.NotNil(t, standard.Remaining)
		assert.Equal(t, 18, *standard.Remaining)
		assert.Equal(t, 30, *standard.Total)
		assert.False(t, standard.SoldOut)

		vip := response.Stock["vip"]
		require.NotNil(t, vip.Remaining)
		assert.Equal(t, 5, *vip.Remaining)
		assert.Equal(t, 15, *vip.Total)

		student := response.Stock["student"]
		assert.Nil(t, student.Remaining)
		assert.Nil(t, student.Total)
		assert.False(t, student.SoldOut)

		countCache.AssertExpectations(t)
		repo.AssertNotCalled(t, "StockCounts")
	})

	t.Run("Success - cache miss falls back to ledger and refills", func(t *testing.T) {
		svc, repo, countCache := setupPricingService(t, testDate(3, 1))

		counts := &pricing.StockCounts{
			ByStage:    pricing.StageCounts{},
			ByCategory: pricing.CategoryCounts{},
		}
		countCache.On("Get", mock.Anything).Return(nil, errors.New("stock counts not cached")).Once()
		repo.On("StockCounts", mock.Anything).Return(counts, nil).Once()
		countCache.On("Set", mock.Anything, counts, 5*time.Second).Return(nil).Once()

		response, err := svc.GetPricing(ctx)

		require.NoError(t, err)
		assert.Equal(t, "early", response.Stage.ID)
		repo.AssertExpectations(t)
		countCache.AssertExpectations(t)
	})

	t.Run("Success - cache refill failure does not block the response", func(t *testing.T) {
		svc, repo, countCache := setupPricingService(t, testDate(3, 1))

		counts := &pricing.StockCounts{}
		countCache.On("Get", mock.Anything).Return(nil, errors.New("redis down")).Once()
		repo.On("StockCounts", mock.Anything).Return(counts, nil).Once()
		countCache.On("Set", mock.Anything, counts, 5*time.Second).Return(errors.New("redis down")).Once()

		_, err := svc.GetPricing(ctx)

		require.NoError(t, err)
	})

	t.Run("Success - exhausted early stage prices as standard", func(t *testing.T) {
		svc, _, countCache := setupPricingService(t, testDate(3, 1))

		counts := &pricing.StockCounts{ByStage: pricing.StageCounts{pricing.StageEarly: 30}}
		countCache.On("Get", mock.Anything).Return(counts, nil).Once()

		response, err := svc.GetPricing(ctx)

		require.NoError(t, err)
		assert.Equal(t, "standard", response.Stage.ID)
	})

	t.Run("Failed - ledger error after cache miss", func(t *testing.T) {
		svc, repo, countCache := setupPricingService(t, testDate(3, 1))

		countCache.On("Get", mock.Anything).Return(nil, errors.New("stock counts not cached")).Once()
		repo.On("StockCounts", mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := svc.GetPricing(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
		countCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPricingService_GetCurrentStage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - active stage with end date for countdown", func(t *testing.T) {
		svc, _, countCache := setupPricingService(t, testDate(3, 1))

		countCache.On("Get", mock.Anything).Return(&pricing.StockCounts{}, nil).Once()

		response, err := svc.GetCurrentStage(ctx)

		require.NoError(t, err)
		assert.Equal(t, "early", response.ID)
		assert.Equal(t, testDate(5, 15), response.EndsAt)
	})

	t.Run("Success - outside all windows falls back to default stage", func(t *testing.T) {
		svc, _, countCache := setupPricingService(t, testDate(12, 1))

		countCache.On("Get", mock.Anything).Return(&pricing.StockCounts{}, nil).Once()

		response, err := svc.GetCurrentStage(ctx)

		require.NoError(t, err)
		assert.Equal(t, "standard", response.ID)
	})
}
