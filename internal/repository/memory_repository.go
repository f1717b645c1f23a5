package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/ventureplan/backend/internal/model"
)

// In-memory implementations used by STORAGE_BACKEND=memory and by tests.
// Every read returns copies so callers never share state with the store.

// MemoryProjectRepository は ProjectRepository のインメモリ実装
type MemoryProjectRepository struct {
	mu       sync.RWMutex
	order    []string
	projects map[string]*model.Project
}

// NewMemoryProjectRepository は空の MemoryProjectRepository を生成する
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: make(map[string]*model.Project)}
}

func cloneProject(p *model.Project) *model.Project {
	c := *p
	c.Tasks = slices.Clone(p.Tasks)
	if c.Tasks == nil {
		c.Tasks = []model.Task{}
	}
	return &c
}

func (r *MemoryProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*model.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, cloneProject(r.projects[id]))
	}
	return projects, nil
}

func (r *MemoryProjectRepository) GetByID(_ context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneProject(p), nil
}

func (r *MemoryProjectRepository) Create(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[project.ID]; exists {
		return ErrConflict
	}
	r.projects[project.ID] = cloneProject(project)
	r.order = append(r.order, project.ID)
	return nil
}

// Update はタスク以外のフィールドを更新する
func (r *MemoryProjectRepository) Update(_ context.Context, project *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.projects[project.ID]
	if !ok {
		return ErrNotFound
	}
	updated := cloneProject(project)
	updated.Tasks = existing.Tasks
	updated.CreatedAt = existing.CreatedAt
	r.projects[project.ID] = updated
	return nil
}

func (r *MemoryProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return ErrNotFound
	}
	delete(r.projects, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *MemoryProjectRepository) AddTask(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[task.ProjectID]
	if !ok {
		return ErrNotFound
	}
	p.Tasks = append(p.Tasks, *task)
	return nil
}

// MemoryTimeEntryRepository は TimeEntryRepository のインメモリ実装
type MemoryTimeEntryRepository struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*model.TimeEntry
}

// NewMemoryTimeEntryRepository は空の MemoryTimeEntryRepository を生成する
func NewMemoryTimeEntryRepository() *MemoryTimeEntryRepository {
	return &MemoryTimeEntryRepository{entries: make(map[string]*model.TimeEntry)}
}

func cloneEntry(e *model.TimeEntry) *model.TimeEntry {
	c := *e
	if e.EndTime != nil {
		end := *e.EndTime
		c.EndTime = &end
	}
	return &c
}

func (r *MemoryTimeEntryRepository) List(_ context.Context) ([]*model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.TimeEntry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, cloneEntry(r.entries[id]))
	}
	return entries, nil
}

func (r *MemoryTimeEntryRepository) ListByProjectID(_ context.Context, projectID string) ([]*model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*model.TimeEntry{}
	for _, id := range r.order {
		if e := r.entries[id]; e.ProjectID == projectID {
			entries = append(entries, cloneEntry(e))
		}
	}
	return entries, nil
}

func (r *MemoryTimeEntryRepository) GetByID(_ context.Context, id string) (*model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneEntry(e), nil
}

func (r *MemoryTimeEntryRepository) Create(_ context.Context, entry *model.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; exists {
		return ErrConflict
	}
	r.entries[entry.ID] = cloneEntry(entry)
	r.order = append(r.order, entry.ID)
	return nil
}

func (r *MemoryTimeEntryRepository) Complete(_ context.Context, entry *model.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[entry.ID]
	if !ok {
		return ErrNotFound
	}
	if !existing.IsRunning() {
		return ErrConflict
	}
	r.entries[entry.ID] = cloneEntry(entry)
	return nil
}

func (r *MemoryTimeEntryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrNotFound
	}
	delete(r.entries, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

// MemoryCatalogRepository serves a fixed trend and idea catalog.
type MemoryCatalogRepository struct {
	trends []model.MarketTrend
	ideas  []model.BusinessIdea
}

// NewMemoryCatalogRepository は渡されたカタログを返すリポジトリを生成する
func NewMemoryCatalogRepository(trends []model.MarketTrend, ideas []model.BusinessIdea) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{trends: trends, ideas: ideas}
}

func (r *MemoryCatalogRepository) ListMarketTrends(_ context.Context) ([]model.MarketTrend, error) {
	return slices.Clone(r.trends), nil
}

func (r *MemoryCatalogRepository) ListBusinessIdeas(_ context.Context) ([]model.BusinessIdea, error) {
	return slices.Clone(r.ideas), nil
}
