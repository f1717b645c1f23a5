package analytics

import (
	"fmt"
	"time"

	"github.com/ventureplan/backend/internal/model"
)

// DurationMinutes returns the whole minutes between start and end, rounded
// to the nearest minute.
func DurationMinutes(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end %s is before start %s",
			ErrInvalidInterval, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return int(end.Sub(start).Round(time.Minute) / time.Minute), nil
}

// Stop completes a running entry at end and returns the completed copy.
// The argument is left untouched.
func Stop(e model.TimeEntry, end time.Time) (model.TimeEntry, error) {
	if !e.IsRunning() {
		return e, fmt.Errorf("%w: time entry %s is %s", ErrInvalidState, e.ID, e.Status)
	}
	minutes, err := DurationMinutes(e.StartTime, end)
	if err != nil {
		return e, err
	}
	e.EndTime = &end
	e.DurationMinutes = minutes
	e.Status = model.TimeEntryCompleted
	return e, nil
}

// SummarizeTime totals the tracked minutes of entries. Running entries
// contribute nothing.
func SummarizeTime(entries []*model.TimeEntry) model.TimeSummary {
	total := 0
	for _, e := range entries {
		if e == nil || e.IsRunning() {
			continue
		}
		total += e.DurationMinutes
	}
	if entries == nil {
		entries = []*model.TimeEntry{}
	}
	return model.TimeSummary{
		TotalMinutes: total,
		TotalHours:   round2(float64(total) / 60),
		Entries:      entries,
	}
}
