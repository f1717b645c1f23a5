package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ventureplan/backend/internal/idgen"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
	ids         idgen.Generator
	now         func() time.Time
}

// NewProjectService は ProjectServiceImpl を生成する（DI: ProjectRepository, ID 採番, 時計を注入）
func NewProjectService(projectRepo repository.ProjectRepository, ids idgen.Generator, now func() time.Time) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, ids: ids, now: now}
}

// List はプロジェクト一覧を取得する
func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

// GetByID は ID でプロジェクトを取得する
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", id, err)
	}
	return p, nil
}

// Create はプロジェクトを作成する。ID・作成日時・既定ステータスはここで決める
func (s *ProjectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if project.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}
	project.ID = s.ids.NewID()
	project.CreatedAt = s.now().UTC()
	if project.Status == "" {
		project.Status = model.ProjectStatusPlanning
	}
	if project.Tasks == nil {
		project.Tasks = []model.Task{}
	}
	return s.projectRepo.Create(ctx, project)
}

// Update は patch に列挙されたフィールドだけを更新し、更新後のプロジェクトを返す
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if patch.Status != nil && strings.TrimSpace(*patch.Status) == "" {
		return nil, fmt.Errorf("%w: status must not be empty", ErrInvalidInput)
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(existing)
	if err := s.projectRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("project %s: %w", id, err)
	}
	return existing, nil
}

// Delete はプロジェクトを削除する
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("project %s: %w", id, err)
	}
	return nil
}

// AddTask はプロジェクトにタスクを追加する。既定ステータスは Pending
func (s *ProjectServiceImpl) AddTask(ctx context.Context, projectID string, task *model.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if task.EstimatedHours < 0 {
		return fmt.Errorf("%w: estimatedHours must not be negative", ErrInvalidInput)
	}
	task.ID = s.ids.NewID()
	task.ProjectID = projectID
	if task.Status == "" {
		task.Status = model.TaskStatusPending
	}
	if err := s.projectRepo.AddTask(ctx, task); err != nil {
		return fmt.Errorf("project %s: %w", projectID, err)
	}
	return nil
}
