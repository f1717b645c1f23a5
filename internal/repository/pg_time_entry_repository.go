package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ventureplan/backend/internal/model"
)

// PgTimeEntryRepository は TimeEntryRepository の PostgreSQL 実装
type PgTimeEntryRepository struct {
	pool *pgxpool.Pool
}

// NewPgTimeEntryRepository は PgTimeEntryRepository を生成する
func NewPgTimeEntryRepository(pool *pgxpool.Pool) *PgTimeEntryRepository {
	return &PgTimeEntryRepository{pool: pool}
}

const timeEntryColumns = `id, project_id, COALESCE(task_id, ''), description, start_time, end_time, duration_minutes, status`

func scanTimeEntry(row pgx.Row) (*model.TimeEntry, error) {
	var e model.TimeEntry
	if err := row.Scan(&e.ID, &e.ProjectID, &e.TaskID, &e.Description, &e.StartTime, &e.EndTime, &e.DurationMinutes, &e.Status); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgTimeEntryRepository) query(ctx context.Context, sql string, args ...any) ([]*model.TimeEntry, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.TimeEntry{}
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// List は全ての作業時間記録を開始時刻順で取得する
func (r *PgTimeEntryRepository) List(ctx context.Context) ([]*model.TimeEntry, error) {
	return r.query(ctx, `SELECT `+timeEntryColumns+` FROM time_entries ORDER BY start_time, id`)
}

// ListByProjectID はプロジェクト単位で作業時間記録を取得する
func (r *PgTimeEntryRepository) ListByProjectID(ctx context.Context, projectID string) ([]*model.TimeEntry, error) {
	return r.query(ctx,
		`SELECT `+timeEntryColumns+` FROM time_entries WHERE project_id = $1 ORDER BY start_time, id`,
		projectID,
	)
}

// GetByID は ID で作業時間記録を取得する
func (r *PgTimeEntryRepository) GetByID(ctx context.Context, id string) (*model.TimeEntry, error) {
	e, err := scanTimeEntry(r.pool.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// Create は Running 状態の作業時間記録を作成する
func (r *PgTimeEntryRepository) Create(ctx context.Context, entry *model.TimeEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO time_entries (id, project_id, task_id, description, start_time, end_time, duration_minutes, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`,
		entry.ID, entry.ProjectID, entry.TaskID, entry.Description,
		entry.StartTime, entry.EndTime, entry.DurationMinutes, entry.Status,
	)
	return err
}

// Complete は status = 'Running' の行だけを更新する。同時に stop された場合は一方のみ成功する
func (r *PgTimeEntryRepository) Complete(ctx context.Context, entry *model.TimeEntry) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE time_entries SET end_time = $1, duration_minutes = $2, status = $3
		 WHERE id = $4 AND status = $5`,
		entry.EndTime, entry.DurationMinutes, entry.Status, entry.ID, model.TimeEntryRunning,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM time_entries WHERE id = $1)`, entry.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrConflict
}

// Delete は作業時間記録を削除する
func (r *PgTimeEntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
