package repository

import (
	"context"

	"conf-ticket-pricing/internal/model"
	"conf-ticket-pricing/internal/pricing"
	apperrors "conf-ticket-pricing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SalesRepository 銷售帳本：寫入確認銷售，並彙總出定價核心需要的已售快照
type SalesRepository interface {
	Create(ctx context.Context, sale *model.Sale) (*model.Sale, error)
	FindBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error)
	List(ctx context.Context) ([]*model.Sale, error)
	// StockCounts 彙總兩組已售數量：各階段生效期間的銷量、各票種的總銷量
	StockCounts(ctx context.Context) (*pricing.StockCounts, error)
}

type SalesRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSalesRepository(pool *pgxpool.Pool) SalesRepository {
	return &SalesRepositoryImpl{
		pool: pool,
	}
}

func (r *SalesRepositoryImpl) Create(ctx context.Context, sale *model.Sale) (*model.Sale, error) {
	query := `
		INSERT INTO sales (sale_id, stage, category, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sale_id, stage, category, quantity, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		sale.SaleID, sale.Stage, sale.Category, sale.Quantity, sale.CreatedAt,
	).Scan(
		&sale.ID,
		&sale.SaleID,
		&sale.Stage,
		&sale.Category,
		&sale.Quantity,
		&sale.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return sale, nil
}

func (r *SalesRepositoryImpl) FindBySaleID(ctx context.Context, saleID uuid.UUID) (*model.Sale, error) {
	query := `
		SELECT id, sale_id, stage, category, quantity, created_at
		FROM sales
		WHERE sale_id = $1
	`

	var sale model.Sale
	err := r.pool.QueryRow(ctx, query, saleID).Scan(
		&sale.ID,
		&sale.SaleID,
		&sale.Stage,
		&sale.Category,
		&sale.Quantity,
		&sale.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSaleNotFound
		}
		return nil, err
	}

	return &sale, nil
}

func (r *SalesRepositoryImpl) List(ctx context.Context) ([]*model.Sale, error) {
	query := `
		SELECT id, sale_id, stage, category, quantity, created_at
		FROM sales
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]*model.Sale, 0)

	for rows.Next() {
		var sale model.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.SaleID,
			&sale.Stage,
			&sale.Category,
			&sale.Quantity,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *SalesRepositoryImpl) StockCounts(ctx context.Context) (*pricing.StockCounts, error) {
	counts := &pricing.StockCounts{
		ByStage:    make(pricing.StageCounts),
		ByCategory: make(pricing.CategoryCounts),
	}

	stageQuery := `
		SELECT stage, COALESCE(SUM(quantity), 0)
		FROM sales
		GROUP BY stage
	`

	rows, err := r.pool.Query(ctx, stageQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stage pricing.StageID
		var sold int
		if err := rows.Scan(&stage, &sold); err != nil {
			return nil, err
		}
		counts.ByStage[stage] = sold
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	categoryQuery := `
		SELECT category, COALESCE(SUM(quantity), 0)
		FROM sales
		GROUP BY category
	`

	rows, err = r.pool.Query(ctx, categoryQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category pricing.Category
		var sold int
		if err := rows.Scan(&category, &sold); err != nil {
			return nil, err
		}
		counts.ByCategory[category] = sold
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
