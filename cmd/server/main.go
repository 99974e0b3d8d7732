package main

import (
	"context"
	"log"

	"conf-ticket-pricing/config"
	"conf-ticket-pricing/internal/cache"
	"conf-ticket-pricing/internal/clock"
	"conf-ticket-pricing/internal/database"
	"conf-ticket-pricing/internal/handler"
	"conf-ticket-pricing/internal/pricing"
	"conf-ticket-pricing/internal/queue"
	"conf-ticket-pricing/internal/repository"
	"conf-ticket-pricing/internal/service"
	"conf-ticket-pricing/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	catalog := pricing.DefaultCatalog()
	resolver := pricing.NewStageResolver(catalog)
	calculator := pricing.NewStockCalculator(catalog)
	clk := clock.NewSystem()

	salesRepo := repository.NewSalesRepository(pool)
	countsCache := cache.NewRedisStockCountsCache(rdb)

	saleQueue, err := queue.NewRedisStreamSaleQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize sale queue: %v", err)
	}

	pricingService := service.NewPricingService(salesRepo, countsCache, resolver, calculator, clk, cfg.Pricing.CountsCacheTTL)
	salesService := service.NewSalesService(salesRepo, countsCache, saleQueue, resolver, calculator, clk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saleWorker := worker.NewSaleWorker(salesService, saleQueue)
	if err := saleWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start sale worker: %v", err)
	}

	router := gin.Default()
	handler.NewPricingHandler(pricingService).RegisterRoutes(router)
	handler.NewSalesHandler(salesService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
