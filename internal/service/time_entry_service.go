package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/idgen"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
)

// TimeEntryService は作業時間記録のビジネスロジックのインターフェース
type TimeEntryService interface {
	List(ctx context.Context) ([]*model.TimeEntry, error)
	Start(ctx context.Context, entry *model.TimeEntry) error
	Stop(ctx context.Context, id string) (*model.TimeEntry, error)
	Summary(ctx context.Context, projectID string) (*model.TimeSummary, error)
	Delete(ctx context.Context, id string) error
}

// TimeEntryServiceImpl は TimeEntryService の実装
type TimeEntryServiceImpl struct {
	entryRepo   repository.TimeEntryRepository
	projectRepo repository.ProjectRepository
	ids         idgen.Generator
	now         func() time.Time
}

// NewTimeEntryService は TimeEntryServiceImpl を生成する
func NewTimeEntryService(
	entryRepo repository.TimeEntryRepository,
	projectRepo repository.ProjectRepository,
	ids idgen.Generator,
	now func() time.Time,
) TimeEntryService {
	return &TimeEntryServiceImpl{entryRepo: entryRepo, projectRepo: projectRepo, ids: ids, now: now}
}

// List は全ての作業時間記録を取得する
func (s *TimeEntryServiceImpl) List(ctx context.Context) ([]*model.TimeEntry, error) {
	return s.entryRepo.List(ctx)
}

// Start は Running 状態の作業時間記録を作成する。プロジェクトが存在しない場合は ErrNotFound
func (s *TimeEntryServiceImpl) Start(ctx context.Context, entry *model.TimeEntry) error {
	if strings.TrimSpace(entry.ProjectID) == "" {
		return fmt.Errorf("%w: projectId is required", ErrInvalidInput)
	}
	if _, err := s.projectRepo.GetByID(ctx, entry.ProjectID); err != nil {
		return fmt.Errorf("project %s: %w", entry.ProjectID, err)
	}

	entry.ID = s.ids.NewID()
	entry.StartTime = s.now().UTC()
	entry.EndTime = nil
	entry.DurationMinutes = 0
	entry.Status = model.TimeEntryRunning
	return s.entryRepo.Create(ctx, entry)
}

// Stop は Running の記録を現在時刻で完了させる。既に完了している場合は analytics.ErrInvalidState
func (s *TimeEntryServiceImpl) Stop(ctx context.Context, id string) (*model.TimeEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("time entry %s: %w", id, err)
	}

	stopped, err := analytics.Stop(*entry, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("time entry %s: %w", id, err)
	}

	if err := s.entryRepo.Complete(ctx, &stopped); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			// 並行して別の stop が先に完了させた
			return nil, fmt.Errorf("time entry %s: %w", id, analytics.ErrInvalidState)
		}
		return nil, fmt.Errorf("time entry %s: %w", id, err)
	}
	return &stopped, nil
}

// Summary はプロジェクトの完了済み作業時間を集計する
func (s *TimeEntryServiceImpl) Summary(ctx context.Context, projectID string) (*model.TimeSummary, error) {
	entries, err := s.entryRepo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	summary := analytics.SummarizeTime(entries)
	return &summary, nil
}

// Delete は作業時間記録を削除する
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("time entry %s: %w", id, err)
	}
	return nil
}
