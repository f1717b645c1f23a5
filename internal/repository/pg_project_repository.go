package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ventureplan/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, name, description, status, start_date, end_date, budget, created_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate, &p.Budget, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Tasks = []model.Task{}
	return &p, nil
}

// List はプロジェクト一覧を作成順で取得する（タスク込み）
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	byID := make(map[string]*model.Project)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tasks, err := r.listTasks(ctx, `SELECT `+taskColumns+` FROM project_tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if p, ok := byID[t.ProjectID]; ok {
			p.Tasks = append(p.Tasks, t)
		}
	}
	return projects, nil
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	tasks, err := r.listTasks(ctx,
		`SELECT `+taskColumns+` FROM project_tasks WHERE project_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}
	p.Tasks = append(p.Tasks, tasks...)
	return p, nil
}

// Create はプロジェクトを作成する。ID は呼び出し側で採番済み
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects (id, name, description, status, start_date, end_date, budget, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		project.ID, project.Name, project.Description, project.Status,
		project.StartDate, project.EndDate, project.Budget, project.CreatedAt,
	)
	return err
}

// Update はプロジェクトを更新する（タスクは AddTask で管理）
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET name = $1, description = $2, status = $3, start_date = $4, end_date = $5, budget = $6
		 WHERE id = $7`,
		project.Name, project.Description, project.Status, project.StartDate, project.EndDate, project.Budget, project.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はプロジェクトを削除する。タスクは外部キーで連鎖削除される
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTask はタスクを追加する。プロジェクトが存在しない場合は ErrNotFound
func (r *PgProjectRepository) AddTask(ctx context.Context, task *model.Task) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO project_tasks (id, project_id, title, status, assigned_to, due_date, estimated_hours)
		 SELECT $1, $2, $3, $4, $5, $6, $7
		 WHERE EXISTS (SELECT 1 FROM projects WHERE id = $2)`,
		task.ID, task.ProjectID, task.Title, task.Status, task.AssignedTo, task.DueDate, task.EstimatedHours,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const taskColumns = `id, project_id, title, status, assigned_to, due_date, estimated_hours`

func (r *PgProjectRepository) listTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.AssignedTo, &t.DueDate, &t.EstimatedHours); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
