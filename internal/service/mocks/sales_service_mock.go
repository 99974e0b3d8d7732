package mocks

import (
	"context"

	"conf-ticket-pricing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSalesService struct {
	mock.Mock
}

func NewMockSalesService() *MockSalesService {
	return &MockSalesService{}
}

func (m *MockSalesService) PrepareSale(ctx context.Context, req model.CreateSaleRequest) (*model.Sale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSalesService) PersistSale(ctx context.Context, sale *model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSalesService) ListSales(ctx context.Context) ([]*model.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Sale), args.Error(1)
}

func (m *MockSalesService) GetSaleBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}
