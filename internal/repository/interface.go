package repository

import (
	"context"

	"github.com/ventureplan/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ProjectRepository はプロジェクト永続化のインターフェース
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
	// AddTask はプロジェクトにタスクを追加する。プロジェクトが無い場合は ErrNotFound
	AddTask(ctx context.Context, task *model.Task) error
}

// TimeEntryRepository は作業時間記録の永続化インターフェース
type TimeEntryRepository interface {
	List(ctx context.Context) ([]*model.TimeEntry, error)
	ListByProjectID(ctx context.Context, projectID string) ([]*model.TimeEntry, error)
	GetByID(ctx context.Context, id string) (*model.TimeEntry, error)
	Create(ctx context.Context, entry *model.TimeEntry) error
	// Complete は Running の記録だけを Completed に更新する (compare-and-swap)。
	// 既に停止済みなら ErrConflict、存在しなければ ErrNotFound を返す
	Complete(ctx context.Context, entry *model.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository は市場トレンドとビジネスアイデアの参照データを返す
type CatalogRepository interface {
	ListMarketTrends(ctx context.Context) ([]model.MarketTrend, error)
	ListBusinessIdeas(ctx context.Context) ([]model.BusinessIdea, error)
}
