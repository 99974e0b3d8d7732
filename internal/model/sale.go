package model

import (
	"time"

	"conf-ticket-pricing/internal/pricing"

	"github.com/google/uuid"
)

// Sale 銷售帳本的一筆確認銷售紀錄
type Sale struct {
	ID        int              `json:"id" db:"id"`
	SaleID    uuid.UUID        `json:"sale_id" db:"sale_id"`
	Stage     pricing.StageID  `json:"stage" db:"stage"`
	Category  pricing.Category `json:"category" db:"category"`
	Quantity  int              `json:"quantity" db:"quantity"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// CreateSaleRequest 建立銷售請求。生效階段由伺服器端解析，不由呼叫端指定。
type CreateSaleRequest struct {
	Category string `json:"category" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// SaleResponse 銷售回應
type SaleResponse struct {
	SaleID    uuid.UUID `json:"sale_id"`
	Stage     string    `json:"stage"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSaleResponse(sale *Sale) *SaleResponse {
	return &SaleResponse{
		SaleID:    sale.SaleID,
		Stage:     string(sale.Stage),
		Category:  string(sale.Category),
		Quantity:  sale.Quantity,
		CreatedAt: sale.CreatedAt,
	}
}
