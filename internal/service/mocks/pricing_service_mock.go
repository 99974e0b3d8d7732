package mocks

import (
	"context"

	"conf-ticket-pricing/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPricingService struct {
	mock.Mock
}

func NewMockPricingService() *MockPricingService {
	return &MockPricingService{}
}

func (m *MockPricingService) GetPricing(ctx context.Context) (*model.PricingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PricingResponse), args.Error(1)
}

func (m *MockPricingService) GetCurrentStage(ctx context.Context) (*model.StageResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StageResponse), args.Error(1)
}
