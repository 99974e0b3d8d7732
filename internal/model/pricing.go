package model

import (
	"time"

	"conf-ticket-pricing/internal/pricing"
)

// StageResponse 當前生效階段，EndsAt 供前端倒數顯示
type StageResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	EndsAt      time.Time `json:"ends_at"`
}

// PricingResponse 定價查詢回應：生效階段加上各票種的庫存資訊。
// remaining / total 為 null 表示該票種無上限。
type PricingResponse struct {
	Stage StageResponse                `json:"stage"`
	Stock map[string]pricing.StockInfo `json:"stock"`
}
