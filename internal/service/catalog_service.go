package service

import (
	"context"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
)

// CatalogService は市場トレンドとビジネスアイデアの参照・絞り込みを行う
type CatalogService interface {
	ListTrends(ctx context.Context) ([]model.MarketTrend, error)
	SearchTrends(ctx context.Context, query string) ([]model.MarketTrend, error)
	ListIdeas(ctx context.Context) ([]model.BusinessIdea, error)
	GenerateIdeas(ctx context.Context, criteria model.IdeaCriteria) ([]model.BusinessIdea, error)
}

// CatalogServiceImpl は CatalogService の実装
type CatalogServiceImpl struct {
	repo repository.CatalogRepository
}

// NewCatalogService は CatalogServiceImpl を生成する
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{repo: repo}
}

func (s *CatalogServiceImpl) ListTrends(ctx context.Context) ([]model.MarketTrend, error) {
	trends, err := s.repo.ListMarketTrends(ctx)
	if err != nil {
		return nil, err
	}
	if trends == nil {
		trends = []model.MarketTrend{}
	}
	return trends, nil
}

// SearchTrends は名前または機会の説明に query を含むトレンドを返す
func (s *CatalogServiceImpl) SearchTrends(ctx context.Context, query string) ([]model.MarketTrend, error) {
	trends, err := s.repo.ListMarketTrends(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SearchTrends(trends, query), nil
}

func (s *CatalogServiceImpl) ListIdeas(ctx context.Context) ([]model.BusinessIdea, error) {
	ideas, err := s.repo.ListBusinessIdeas(ctx)
	if err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []model.BusinessIdea{}
	}
	return ideas, nil
}

// GenerateIdeas は条件に合うアイデアをカタログ順で返す
func (s *CatalogServiceImpl) GenerateIdeas(ctx context.Context, criteria model.IdeaCriteria) ([]model.BusinessIdea, error) {
	ideas, err := s.repo.ListBusinessIdeas(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterIdeas(ideas, criteria), nil
}
