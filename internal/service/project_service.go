package service

import (
	"context"

	"github.com/ventureplan/backend/internal/model"
)

// ProjectService はプロジェクトに関するビジネスロジックのインターフェース
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	AddTask(ctx context.Context, projectID string, task *model.Task) error
}
