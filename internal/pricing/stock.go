package pricing

// StockInfo 單一票種的庫存資訊。Remaining / Total 為 nil 表示無上限。
type StockInfo struct {
	Remaining *int `json:"remaining"`
	Total     *int `json:"total"`
	SoldOut   bool `json:"sold_out"`
}

// StockCalculator 計算單一票種在當前階段下的庫存資訊
type StockCalculator struct {
	catalog *Catalog
}

func NewStockCalculator(catalog *Catalog) *StockCalculator {
	return &StockCalculator{catalog: catalog}
}

// StockInfo 依固定順序判定，先命中者生效：
//  1. 全售期上限：命中後不再看階段上限，即使階段上限也列了該票種
//  2. 階段上限：當前階段的上限涵蓋該票種時生效
//  3. 都沒有：回傳無上限
func (s *StockCalculator) StockInfo(category Category, activeStage Stage, counts StockCounts) StockInfo {
	if limit, ok := s.catalog.GlobalLimit(category); ok {
		return limitedStockInfo(limit, counts.ByCategory[category])
	}
	if activeStage.StockLimit != nil && activeStage.StockLimit.AppliesTo(category) {
		return limitedStockInfo(activeStage.StockLimit.StageLimit, counts.ByStage[activeStage.ID])
	}
	return StockInfo{}
}

// limitedStockInfo 上游超賣時 sold 可能大於 total，remaining 夾在 0 不得為負
func limitedStockInfo(total, sold int) StockInfo {
	remaining := total - sold
	if remaining < 0 {
		remaining = 0
	}
	t := total
	return StockInfo{
		Remaining: &remaining,
		Total:     &t,
		SoldOut:   sold >= total,
	}
}
