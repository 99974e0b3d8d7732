package worker

import (
	"context"

	"conf-ticket-pricing/internal/queue"
	"conf-ticket-pricing/internal/service"
)

// SaleWorker 消費銷售隊列，把收到的單寫進帳本
type SaleWorker interface {
	Start(ctx context.Context) error
}

type SaleWorkerImpl struct {
	service service.SalesService
	queue   queue.SaleQueue
}

func NewSaleWorker(service service.SalesService, queue queue.SaleQueue) SaleWorker {
	return &SaleWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *SaleWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeSales(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.service.PersistSale(ctx, msg.Data); err != nil {
				// 帳本暫時寫不進去，留給隊列重試
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
