package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ventureplan/backend/internal/model"
)

// PgCatalogRepository は CatalogRepository の PostgreSQL 実装。データはマイグレーションで投入される
type PgCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPgCatalogRepository は PgCatalogRepository を生成する
func NewPgCatalogRepository(pool *pgxpool.Pool) *PgCatalogRepository {
	return &PgCatalogRepository{pool: pool}
}

// ListMarketTrends は市場トレンドを ID 順で返す
func (r *PgCatalogRepository) ListMarketTrends(ctx context.Context) ([]model.MarketTrend, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, growth, demand, opportunity FROM market_trends ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []model.MarketTrend
	for rows.Next() {
		var t model.MarketTrend
		if err := rows.Scan(&t.ID, &t.Name, &t.Growth, &t.Demand, &t.Opportunity); err != nil {
			return nil, err
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// ListBusinessIdeas はビジネスアイデアを ID 順で返す
func (r *PgCatalogRepository) ListBusinessIdeas(ctx context.Context) ([]model.BusinessIdea, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, category, investment, projected_roi, feasibility FROM business_ideas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []model.BusinessIdea
	for rows.Next() {
		var i model.BusinessIdea
		if err := rows.Scan(&i.ID, &i.Title, &i.Category, &i.Investment, &i.ProjectedROI, &i.Feasibility); err != nil {
			return nil, err
		}
		ideas = append(ideas, i)
	}
	return ideas, rows.Err()
}
