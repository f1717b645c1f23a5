package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/idgen"
	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
)

// testClock は手動で進められる時計
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTimeEntryFixture(t *testing.T) (TimeEntryService, *testClock, string) {
	t.Helper()
	projects := repository.NewMemoryProjectRepository()
	if err := projects.Create(context.Background(), &model.Project{ID: "p-1", Name: "Cafe"}); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	clock := &testClock{now: fixedNow}
	svc := NewTimeEntryService(repository.NewMemoryTimeEntryRepository(), projects, idgen.NewSequence("e"), clock.Now)
	return svc, clock, "p-1"
}

func TestTimeEntryService_StartStop(t *testing.T) {
	ctx := context.Background()
	svc, clock, projectID := newTimeEntryFixture(t)

	entry := &model.TimeEntry{ProjectID: projectID, Description: "menu design"}
	if err := svc.Start(ctx, entry); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if entry.ID != "e-1" || entry.Status != model.TimeEntryRunning || entry.EndTime != nil {
		t.Fatalf("unexpected running entry %+v", entry)
	}

	clock.Advance(90*time.Minute + 29*time.Second)
	stopped, err := svc.Stop(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if stopped.Status != model.TimeEntryCompleted {
		t.Errorf("expected Completed, got %s", stopped.Status)
	}
	if stopped.DurationMinutes != 90 {
		t.Errorf("expected 90 minutes, got %d", stopped.DurationMinutes)
	}
	if stopped.EndTime == nil || !stopped.EndTime.Equal(clock.Now()) {
		t.Errorf("expected endTime %v, got %v", clock.Now(), stopped.EndTime)
	}
}

func TestTimeEntryService_StopTwice(t *testing.T) {
	ctx := context.Background()
	svc, clock, projectID := newTimeEntryFixture(t)

	entry := &model.TimeEntry{ProjectID: projectID}
	_ = svc.Start(ctx, entry)
	clock.Advance(10 * time.Minute)
	if _, err := svc.Stop(ctx, entry.ID); err != nil {
		t.Fatalf("first Stop: %v", err)
	}

	clock.Advance(10 * time.Minute)
	if _, err := svc.Stop(ctx, entry.ID); !errors.Is(err, analytics.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}

	summary, _ := svc.Summary(ctx, projectID)
	if summary.TotalMinutes != 10 {
		t.Errorf("expected first stop to be kept (10 minutes), got %d", summary.TotalMinutes)
	}
}

func TestTimeEntryService_StopConcurrent(t *testing.T) {
	ctx := context.Background()
	svc, clock, projectID := newTimeEntryFixture(t)

	entry := &model.TimeEntry{ProjectID: projectID}
	_ = svc.Start(ctx, entry)
	clock.Advance(5 * time.Minute)

	var ok, invalid atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Stop(ctx, entry.ID)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, analytics.ErrInvalidState):
				invalid.Add(1)
			default:
				t.Errorf("unexpected error %v", err)
			}
		}()
	}
	wg.Wait()

	if ok.Load() != 1 || invalid.Load() != 9 {
		t.Errorf("expected 1 success and 9 ErrInvalidState, got %d and %d", ok.Load(), invalid.Load())
	}
}

func TestTimeEntryService_StopNotFound(t *testing.T) {
	svc, _, _ := newTimeEntryFixture(t)
	if _, err := svc.Stop(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTimeEntryService_StartUnknownProject(t *testing.T) {
	svc, _, _ := newTimeEntryFixture(t)
	ctx := context.Background()

	if err := svc.Start(ctx, &model.TimeEntry{ProjectID: "nope"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Start(ctx, &model.TimeEntry{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTimeEntryService_SummaryIgnoresRunning(t *testing.T) {
	ctx := context.Background()
	svc, clock, projectID := newTimeEntryFixture(t)

	first := &model.TimeEntry{ProjectID: projectID}
	_ = svc.Start(ctx, first)
	clock.Advance(45 * time.Minute)
	_, _ = svc.Stop(ctx, first.ID)

	running := &model.TimeEntry{ProjectID: projectID}
	_ = svc.Start(ctx, running)
	clock.Advance(30 * time.Minute)

	summary, err := svc.Summary(ctx, projectID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalMinutes != 45 {
		t.Errorf("expected 45 minutes, got %d", summary.TotalMinutes)
	}
	if summary.TotalHours != 0.75 {
		t.Errorf("expected 0.75 hours, got %v", summary.TotalHours)
	}
	if len(summary.Entries) != 2 {
		t.Errorf("expected both entries listed, got %d", len(summary.Entries))
	}
}

func TestTimeEntryService_SummaryEmptyProject(t *testing.T) {
	svc, _, _ := newTimeEntryFixture(t)
	summary, err := svc.Summary(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalMinutes != 0 || summary.TotalHours != 0 || summary.Entries == nil {
		t.Errorf("expected zero summary with empty entries, got %+v", summary)
	}
}

func TestTimeEntryService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, projectID := newTimeEntryFixture(t)

	entry := &model.TimeEntry{ProjectID: projectID}
	_ = svc.Start(ctx, entry)
	if err := svc.Delete(ctx, entry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, entry.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
