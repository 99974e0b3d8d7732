package pricing

import (
	"fmt"
	"sort"
	"time"
)

// StageID 價格階段識別碼
type StageID string

const (
	StageBlind    StageID = "blind"
	StageEarly    StageID = "early"
	StageStandard StageID = "standard"
	StageLate     StageID = "late"
)

// Category 票種類別
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryVIP      Category = "vip"
	CategoryStudent  Category = "student"
)

// Categories 所有可販售票種，API 回應依此順序列出
var Categories = []Category{CategoryStandard, CategoryVIP, CategoryStudent}

// IsValid 驗證票種是否有效
func (c Category) IsValid() bool {
	for _, category := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// StockLimit 階段庫存上限，只對 Categories 內的票種生效
type StockLimit struct {
	StageLimit int
	Categories []Category
}

// AppliesTo 檢查上限是否涵蓋指定票種
func (l *StockLimit) AppliesTo(category Category) bool {
	for _, c := range l.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Stage 價格階段，時間窗為半開區間 [StartDate, EndDate)
type Stage struct {
	ID          StageID
	DisplayName string
	StartDate   time.Time
	EndDate     time.Time
	Priority    int
	StockLimit  *StockLimit
}

// Contains 檢查 now 是否落在階段時間窗內
func (s *Stage) Contains(now time.Time) bool {
	return !now.Before(s.StartDate) && now.Before(s.EndDate)
}

// Catalog 階段目錄：一張不可變的規則表，建構時驗證一次，之後不再有錯誤路徑。
// 「下一個階段」以 priority 索引查找而非陣列位置，插入或重排階段不會破壞跳層行為。
type Catalog struct {
	stages       []Stage
	indexByID    map[StageID]int
	indexByPrio  map[int]int
	defaultID    StageID
	globalLimits map[Category]int
}

// NewCatalog 建構並驗證階段目錄。
// defaultID 為無任何時間窗匹配時的回退階段，缺少它屬於設定錯誤，在這裡攔截。
func NewCatalog(stages []Stage, defaultID StageID, globalLimits map[Category]int) (*Catalog, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("catalog requires at least one stage")
	}

	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	indexByID := make(map[StageID]int, len(sorted))
	indexByPrio := make(map[int]int, len(sorted))
	for i, stage := range sorted {
		if _, ok := indexByID[stage.ID]; ok {
			return nil, fmt.Errorf("duplicate stage id %q", stage.ID)
		}
		if _, ok := indexByPrio[stage.Priority]; ok {
			return nil, fmt.Errorf("duplicate stage priority %d (stage %q)", stage.Priority, stage.ID)
		}
		if !stage.EndDate.After(stage.StartDate) {
			return nil, fmt.Errorf("stage %q has empty window", stage.ID)
		}
		if stage.StockLimit != nil {
			if stage.StockLimit.StageLimit <= 0 {
				return nil, fmt.Errorf("stage %q has non-positive stock limit", stage.ID)
			}
			if len(stage.StockLimit.Categories) == 0 {
				return nil, fmt.Errorf("stage %q stock limit covers no categories", stage.ID)
			}
		}
		// priority 順序必須與開賣時間順序一致
		if i > 0 && !sorted[i-1].StartDate.Before(stage.StartDate) {
			return nil, fmt.Errorf("stage %q starts before higher-priority stage %q", stage.ID, sorted[i-1].ID)
		}
		indexByID[stage.ID] = i
		indexByPrio[stage.Priority] = i
	}

	if _, ok := indexByID[defaultID]; !ok {
		return nil, fmt.Errorf("default stage %q not in catalog", defaultID)
	}

	for category, limit := range globalLimits {
		if limit <= 0 {
			return nil, fmt.Errorf("global limit for %q must be positive", category)
		}
	}

	limits := make(map[Category]int, len(globalLimits))
	for category, limit := range globalLimits {
		limits[category] = limit
	}

	return &Catalog{
		stages:       sorted,
		indexByID:    indexByID,
		indexByPrio:  indexByPrio,
		defaultID:    defaultID,
		globalLimits: limits,
	}, nil
}

// StageByID 依識別碼查找階段
func (c *Catalog) StageByID(id StageID) (Stage, bool) {
	i, ok := c.indexByID[id]
	if !ok {
		return Stage{}, false
	}
	return c.stages[i], true
}

// NextStage 回傳 priority+1 的階段；最後一個階段沒有下一個
func (c *Catalog) NextStage(id StageID) (Stage, bool) {
	i, ok := c.indexByID[id]
	if !ok {
		return Stage{}, false
	}
	j, ok := c.indexByPrio[c.stages[i].Priority+1]
	if !ok {
		return Stage{}, false
	}
	return c.stages[j], true
}

// DefaultStage 回傳回退階段
func (c *Catalog) DefaultStage() Stage {
	return c.stages[c.indexByID[c.defaultID]]
}

// GlobalLimit 回傳票種的全售期上限
func (c *Catalog) GlobalLimit(category Category) (int, bool) {
	limit, ok := c.globalLimits[category]
	return limit, ok
}

// Stages 回傳 priority 升冪的階段副本
func (c *Catalog) Stages() []Stage {
	stages := make([]Stage, len(c.stages))
	copy(stages, c.stages)
	return stages
}

// DefaultCatalog 本屆售票的階段設定
func DefaultCatalog() *Catalog {
	stages := []Stage{
		{
			ID:          StageBlind,
			DisplayName: "Blind Bird",
			StartDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
			Priority:    1,
			StockLimit:  &StockLimit{StageLimit: 40, Categories: []Category{CategoryStandard, CategoryVIP}},
		},
		{
			ID:          StageEarly,
			DisplayName: "Early Bird",
			StartDate:   time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
			Priority:    2,
			StockLimit:  &StockLimit{StageLimit: 250, Categories: []Category{CategoryStandard, CategoryVIP}},
		},
		{
			ID:          StageStandard,
			DisplayName: "Standard",
			StartDate:   time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Priority:    3,
		},
		{
			ID:          StageLate,
			DisplayName: "Late Bird",
			StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			Priority:    4,
		},
	}
	globalLimits := map[Category]int{
		CategoryVIP: 60,
	}

	catalog, err := NewCatalog(stages, StageStandard, globalLimits)
	if err != nil {
		panic(err)
	}
	return catalog
}
