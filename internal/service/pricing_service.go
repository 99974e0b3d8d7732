package service

import (
	"context"
	"time"

	"conf-ticket-pricing/internal/cache"
	"conf-ticket-pricing/internal/clock"
	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/pricing"
	"conf-ticket-pricing/internal/repository"
	"conf-ticket-pricing/pkg/logger"

	"go.uber.org/zap"
)

// PricingService 定價查詢：解析生效階段並附上各票種庫存資訊
type PricingService interface {
	GetPricing(ctx context.Context) (*model.PricingResponse, error)
	GetCurrentStage(ctx context.Context) (*model.StageResponse, error)
}

type PricingServiceImpl struct {
	repo       repository.SalesRepository
	countCache cache.StockCountsCache
	resolver   *pricing.StageResolver
	calculator *pricing.StockCalculator
	clock      clock.Clock
	cacheTTL   time.Duration
}

func NewPricingService(
	repo repository.SalesRepository,
	countCache cache.StockCountsCache,
	resolver *pricing.StageResolver,
	calculator *pricing.StockCalculator,
	clk clock.Clock,
	cacheTTL time.Duration,
) PricingService {
	return &PricingServiceImpl{
		repo:       repo,
		countCache: countCache,
		resolver:   resolver,
		calculator: calculator,
		clock:      clk,
		cacheTTL:   cacheTTL,
	}
}

func (s *PricingServiceImpl) GetPricing(ctx context.Context) (*model.PricingResponse, error) {
	counts, err := s.stockCounts(ctx)
	if err != nil {
		return nil, err
	}

	stage := s.resolver.Resolve(s.clock.Now(), counts)

	stock := make(map[string]pricing.StockInfo, len(pricing.Categories))
	for _, category := range pricing.Categories {
		stock[string(category)] = s.calculator.StockInfo(category, stage, *counts)
	}

	return &model.PricingResponse{
		Stage: model.StageResponse{
			ID:          string(stage.ID),
			DisplayName: stage.DisplayName,
			EndsAt:      stage.EndDate,
		},
		Stock: stock,
	}, nil
}

func (s *PricingServiceImpl) GetCurrentStage(ctx context.Context) (*model.StageResponse, error) {
	counts, err := s.stockCounts(ctx)
	if err != nil {
		return nil, err
	}

	stage := s.resolver.Resolve(s.clock.Now(), counts)

	return &model.StageResponse{
		ID:          string(stage.ID),
		DisplayName: stage.DisplayName,
		EndsAt:      stage.EndDate,
	}, nil
}

// stockCounts 先讀快照，未命中才回帳本彙總並回填。
// 快照讀寫失敗只記 log 不擋請求，帳本才是唯一必要依賴。
func (s *PricingServiceImpl) stockCounts(ctx context.Context) (*pricing.StockCounts, error) {
	counts, err := s.countCache.Get(ctx)
	if err == nil {
		return counts, nil
	}

	counts, err = s.repo.StockCounts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.countCache.Set(ctx, counts, s.cacheTTL); err != nil {
		logger.WithComponent("service").Warn("failed to cache stock counts", zap.Error(err))
	}

	return counts, nil
}
