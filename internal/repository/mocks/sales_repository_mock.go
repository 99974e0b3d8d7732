package mocks

import (
	"context"

	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSalesRepository struct {
	mock.Mock
}

func NewMockSalesRepository() *MockSalesRepository {
	return &MockSalesRepository{}
}

func (m *MockSalesRepository) Create(ctx context.Context, sale *model.Sale) (*model.Sale, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSalesRepository) FindBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSalesRepository) List(ctx context.Context) ([]*model.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sale), args.Error(1)
}

func (m *MockSalesRepository) StockCounts(ctx context.Context) (*pricing.StockCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.StockCounts), args.Error(1)
}
