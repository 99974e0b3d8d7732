package pricing

import "time"

// StageCounts 各階段生效期間的已售數量，key 為階段識別碼
type StageCounts map[StageID]int

// CategoryCounts 各票種的總已售數量，key 為票種
type CategoryCounts map[Category]int

// StockCounts 外部銷售帳本提供的已售數量快照。
// 本套件不持有狀態，每次解析都以呼叫端傳入的快照重新計算。
type StockCounts struct {
	ByStage    StageCounts
	ByCategory CategoryCounts
}

// StageResolver 依時間與庫存決定當前生效的價格階段
type StageResolver struct {
	catalog *Catalog
}

func NewStageResolver(catalog *Catalog) *StageResolver {
	return &StageResolver{catalog: catalog}
}

// Resolve 回傳當前生效的階段。
//  1. 依 priority 升冪找第一個時間窗包含 now 的階段
//  2. 該階段有庫存上限且已售滿時，跳到下一個階段（只跳一層，
//     不檢查下一階段本身的時間窗或庫存）
//  3. 無任何階段的時間窗匹配時，回退到預設階段
//
// counts 為 nil 時只比對時間窗，不做售滿檢查。
func (r *StageResolver) Resolve(now time.Time, counts *StockCounts) Stage {
	for _, stage := range r.catalog.stages {
		if !stage.Contains(now) {
			continue
		}
		if counts != nil && stage.StockLimit != nil {
			sold := counts.ByStage[stage.ID]
			if sold >= stage.StockLimit.StageLimit {
				if next, ok := r.catalog.NextStage(stage.ID); ok {
					return next
				}
				// 最後一個階段售滿也只能回傳自己
			}
		}
		return stage
	}
	return r.catalog.DefaultStage()
}

// IsStageActive 檢查指定階段是否為當前生效階段
func (r *StageResolver) IsStageActive(id StageID, now time.Time, counts *StockCounts) bool {
	return r.Resolve(now, counts).ID == id
}

// CurrentStageEndDate 回傳當前生效階段的結束時間，供倒數顯示。
// 若生效階段是因售滿跳層而來，回傳的仍是該階段自己的結束時間。
func (r *StageResolver) CurrentStageEndDate(now time.Time, counts *StockCounts) time.Time {
	return r.Resolve(now, counts).EndDate
}
