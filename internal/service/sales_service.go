package service

import (
	"context"

	"conf-ticket-pricing/internal/cache"
	"conf-ticket-pricing/internal/clock"
	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/pricing"
	"conf-ticket-pricing/internal/queue"
	"conf-ticket-pricing/internal/repository"
	apperrors "conf-ticket-pricing/pkg/app_errors"
	"conf-ticket-pricing/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SalesService interface {
	// PrepareSale 容量檢查後收單並發佈到隊列，立即回覆呼叫端
	PrepareSale(ctx context.Context, req model.CreateSaleRequest) (*model.Sale, error)
	// PersistSale 隊列消費端：寫入帳本並使快照失效
	PersistSale(ctx context.Context, sale *model.Sale) error
	ListSales(ctx context.Context) ([]*model.Sale, error)
	GetSaleBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error)
}

type SalesServiceImpl struct {
	repo       repository.SalesRepository
	countCache cache.StockCountsCache
	saleQueue  queue.SaleQueue
	resolver   *pricing.StageResolver
	calculator *pricing.StockCalculator
	clock      clock.Clock
}

func NewSalesService(
	repo repository.SalesRepository,
	countCache cache.StockCountsCache,
	saleQueue queue.SaleQueue,
	resolver *pricing.StageResolver,
	calculator *pricing.StockCalculator,
	clk clock.Clock,
) SalesService {
	return &SalesServiceImpl{
		repo:       repo,
		countCache: countCache,
		saleQueue:  saleQueue,
		resolver:   resolver,
		calculator: calculator,
		clock:      clk,
	}
}

func (s *SalesServiceImpl) PrepareSale(ctx context.Context, req model.CreateSaleRequest) (*model.Sale, error) {
	category := pricing.Category(req.Category)
	if !category.IsValid() {
		return nil, apperrors.ErrUnknownCategory
	}

	// 容量攸關的決策必須用帳本當下的彙總，不讀快照
	counts, err := s.repo.StockCounts(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	stage := s.resolver.Resolve(now, counts)

	info := s.calculator.StockInfo(category, stage, *counts)
	if info.SoldOut {
		return nil, apperrors.ErrCategorySoldOut
	}
	if info.Remaining != nil && req.Quantity > *info.Remaining {
		return nil, apperrors.ErrInsufficientStock
	}

	sale := &model.Sale{
		SaleID:    uuid.New(),
		Stage:     stage.ID,
		Category:  category,
		Quantity:  req.Quantity,
		CreatedAt: now,
	}

	if err := s.saleQueue.PublishSale(ctx, sale); err != nil {
		logger.WithComponent("service").Error("failed to publish sale", zap.Error(err))
		return nil, apperrors.ErrInternalServerError
	}

	return sale, nil
}

func (s *SalesServiceImpl) PersistSale(ctx context.Context, sale *model.Sale) error {
	if _, err := s.repo.Create(ctx, sale); err != nil {
		return err
	}

	// 快照失效一定要執行，用 context.Background() 脫離請求生命週期
	if err := s.countCache.Invalidate(context.Background()); err != nil {
		logger.WithComponent("service").Warn("failed to invalidate stock counts cache", zap.Error(err))
	}

	return nil
}

func (s *SalesServiceImpl) ListSales(ctx context.Context) ([]*model.Sale, error) {
	return s.repo.List(ctx)
}

func (s *SalesServiceImpl) GetSaleBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error) {
	return s.repo.FindBySaleID(ctx, saleID)
}
