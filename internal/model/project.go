package model

import "time"

// プロジェクトのステータス。ダッシュボード集計は完全一致で判定する。
const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
)

type Project struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Budget      float64    `json:"budget"`
	Tasks       []Task     `json:"tasks"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Task はプロジェクト配下のタスク
type Task struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId"`
	Title          string     `json:"title"`
	Status         string     `json:"status"` // "Pending" | "In Progress" | "Completed"
	AssignedTo     string     `json:"assignedTo,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	EstimatedHours float64    `json:"estimatedHours"`
}

// TaskStatusPending is the default status of a new task.
const TaskStatusPending = "Pending"

// ProjectPatch holds the fields that can be updated on a project.
// A nil field is left unchanged. ClearStartDate and ClearEndDate reset the
// corresponding date to nil and take precedence over a supplied value.
type ProjectPatch struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Budget         *float64   `json:"budget"`
	ClearStartDate bool       `json:"-"`
	ClearEndDate   bool       `json:"-"`
}

// Apply は patch の非 nil フィールドを p に反映する
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	switch {
	case patch.ClearStartDate:
		p.StartDate = nil
	case patch.StartDate != nil:
		p.StartDate = patch.StartDate
	}
	switch {
	case patch.ClearEndDate:
		p.EndDate = nil
	case patch.EndDate != nil:
		p.EndDate = patch.EndDate
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
}
