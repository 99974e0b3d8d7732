package mocks

import (
	"context"
	"time"

	"conf-ticket-pricing/internal/pricing"

	"github.com/stretchr/testify/mock"
)

type MockStockCountsCache struct {
	mock.Mock
}

func NewMockStockCountsCache() *MockStockCountsCache {
	return &MockStockCountsCache{}
}

func (m *MockStockCountsCache) Get(ctx context.Context) (*pricing.StockCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.StockCounts), args.Error(1)
}

func (m *MockStockCountsCache) Set(ctx context.Context, counts *pricing.StockCounts, ttl time.Duration) error {
	args := m.Called(ctx, counts, ttl)
	return args.Error(0)
}

func (m *MockStockCountsCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
