package queue

import (
	"context"

	"conf-ticket-pricing/internal/model"
)

type Delivery struct {
	Data *model.Sale
	Ack  func()
	Nack func(requeue bool)
}

// SaleQueue 銷售入帳隊列：API 收單後發佈，worker 消費並寫入帳本
type SaleQueue interface {
	PublishSale(ctx context.Context, sale *model.Sale) error
	SubscribeSales(ctx context.Context) (<-chan Delivery, error)
}

type MemorySaleQueueImpl struct {
	// 以 Go channel 模擬 MQ，單機與測試用
	ch chan *model.Sale
}

func NewMemorySaleQueue(bufferSize int) SaleQueue {
	return &MemorySaleQueueImpl{
		ch: make(chan *model.Sale, bufferSize),
	}
}

func (q *MemorySaleQueueImpl) PublishSale(ctx context.Context, sale *model.Sale) error {
	q.ch <- sale
	return nil
}

func (q *MemorySaleQueueImpl) SubscribeSales(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case sale, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: sale,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- sale // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
