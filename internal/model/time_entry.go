package model

import "time"

// TimeEntryStatus is the lifecycle state of a time entry.
type TimeEntryStatus string

const (
	TimeEntryRunning   TimeEntryStatus = "Running"
	TimeEntryCompleted TimeEntryStatus = "Completed"
)

// TimeEntry is a tracked activity against a project. It is created Running
// with a nil EndTime and transitions once to Completed.
type TimeEntry struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"projectId"`
	TaskID          string          `json:"taskId,omitempty"`
	Description     string          `json:"description"`
	StartTime       time.Time       `json:"startTime"`
	EndTime         *time.Time      `json:"endTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Status          TimeEntryStatus `json:"status"`
}

// IsRunning returns true if the entry has not been stopped yet.
func (e *TimeEntry) IsRunning() bool {
	return e.Status == TimeEntryRunning
}

// TimeSummary は特定プロジェクトの作業時間集計
type TimeSummary struct {
	TotalMinutes int          `json:"totalMinutes"`
	TotalHours   float64      `json:"totalHours"`
	Entries      []*TimeEntry `json:"entries"`
}
