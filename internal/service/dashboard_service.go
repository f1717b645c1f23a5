package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
)

// DashboardService はダッシュボード用の集計を返す
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardSummary, error)
}

// DashboardServiceImpl は DashboardService の実装。集計は毎回ストアの現在値から行う
type DashboardServiceImpl struct {
	projectRepo repository.ProjectRepository
	entryRepo   repository.TimeEntryRepository
	catalogRepo repository.CatalogRepository
}

// NewDashboardService は DashboardServiceImpl を生成する
func NewDashboardService(
	projectRepo repository.ProjectRepository,
	entryRepo repository.TimeEntryRepository,
	catalogRepo repository.CatalogRepository,
) DashboardService {
	return &DashboardServiceImpl{projectRepo: projectRepo, entryRepo: entryRepo, catalogRepo: catalogRepo}
}

// Stats は 4 つのコレクションを並行に読み込み、analytics.Aggregate で集計する
func (s *DashboardServiceImpl) Stats(ctx context.Context) (*model.DashboardSummary, error) {
	var (
		projects []*model.Project
		entries  []*model.TimeEntry
		trends   []model.MarketTrend
		ideas    []model.BusinessIdea
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = s.projectRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.entryRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		trends, err = s.catalogRepo.ListMarketTrends(gctx)
		return err
	})
	g.Go(func() (err error) {
		ideas, err = s.catalogRepo.ListBusinessIdeas(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := analytics.Aggregate(projects, entries, trends, ideas)
	return &summary, nil
}
