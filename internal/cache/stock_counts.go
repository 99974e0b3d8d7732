package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"conf-ticket-pricing/internal/pricing"
	apperrors "conf-ticket-pricing/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

const (
	stockCountsKey = "pricing:stock_counts"

	stageFieldPrefix    = "stage:"
	categoryFieldPrefix = "category:"
	cachedAtField       = "cached_at"
)

// StockCountsCache 銷售帳本彙總結果的短 TTL 快照，只服務讀取路徑。
// 授權新銷售前一律回帳本重新彙總，不讀這份快照。
type StockCountsCache interface {
	// Get 取得快照；key 不存在或已過期時回傳 ErrCountsNotCached
	Get(ctx context.Context) (*pricing.StockCounts, error)
	// Set 覆寫快照並設定存活時間
	Set(ctx context.Context, counts *pricing.StockCounts, ttl time.Duration) error
	// Invalidate 使快照失效，新銷售入帳後呼叫
	Invalidate(ctx context.Context) error
}

type RedisStockCountsCacheImpl struct {
	client *redis.Client
}

func NewRedisStockCountsCache(client *redis.Client) StockCountsCache {
	return &RedisStockCountsCacheImpl{
		client: client,
	}
}

func (c *RedisStockCountsCacheImpl) Get(ctx context.Context) (*pricing.StockCounts, error) {
	result, err := c.client.HGetAll(ctx, stockCountsKey).Result()
	if err != nil {
		return nil, err
	}

	// key 不存在時 HGetAll 回傳空 map 而非 redis.Nil
	if len(result) == 0 {
		return nil, apperrors.ErrCountsNotCached
	}

	counts := &pricing.StockCounts{
		ByStage:    make(pricing.StageCounts),
		ByCategory: make(pricing.CategoryCounts),
	}

	for field, value := range result {
		switch {
		case field == cachedAtField:
			continue
		case strings.HasPrefix(field, stageFieldPrefix):
			sold, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid stage count %q: %v", value, err)
			}
			counts.ByStage[pricing.StageID(strings.TrimPrefix(field, stageFieldPrefix))] = sold
		case strings.HasPrefix(field, categoryFieldPrefix):
			sold, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid category count %q: %v", value, err)
			}
			counts.ByCategory[pricing.Category(strings.TrimPrefix(field, categoryFieldPrefix))] = sold
		}
	}

	return counts, nil
}

func (c *RedisStockCountsCacheImpl) Set(ctx context.Context, counts *pricing.StockCounts, ttl time.Duration) error {
	fields := map[string]interface{}{
		// 沒有任何銷售時雜湊仍需至少一個欄位，key 才會存在
		cachedAtField: time.Now().UTC().Unix(),
	}
	for stage, sold := range counts.ByStage {
		fields[stageFieldPrefix+string(stage)] = sold
	}
	for category, sold := range counts.ByCategory {
		fields[categoryFieldPrefix+string(category)] = sold
	}

	// 先刪再寫，避免殘留上一份快照的欄位
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, stockCountsKey)
	pipe.HSet(ctx, stockCountsKey, fields)
	pipe.Expire(ctx, stockCountsKey, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisStockCountsCacheImpl) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, stockCountsKey).Err()
}
