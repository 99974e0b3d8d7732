package mocks

import (
	"context"

	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockSaleQueue struct {
	mock.Mock
}

func NewMockSaleQueue() *MockSaleQueue {
	return &MockSaleQueue{}
}

func (m *MockSaleQueue) PublishSale(ctx context.Context, sale *model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleQueue) SubscribeSales(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
