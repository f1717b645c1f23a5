package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/repository"
	"github.com/ventureplan/backend/internal/service"
)

// mockProjectService は ProjectService のモック
type mockProjectService struct {
	listFunc    func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc func(ctx context.Context, id string) (*model.Project, error)
	createFunc  func(ctx context.Context, project *model.Project) error
	updateFunc  func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	deleteFunc  func(ctx context.Context, id string) error
	addTaskFunc func(ctx context.Context, projectID string, task *model.Task) error
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, project *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectService) AddTask(ctx context.Context, projectID string, task *model.Task) error {
	if m.addTaskFunc != nil {
		return m.addTaskFunc(ctx, projectID, task)
	}
	return nil
}

func projectMux(h *ProjectHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", h.List)
	mux.HandleFunc("GET /api/projects/{id}", h.Get)
	mux.HandleFunc("POST /api/projects", h.Create)
	mux.HandleFunc("PUT /api/projects/{id}", h.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", h.Delete)
	mux.HandleFunc("POST /api/projects/{id}/tasks", h.AddTask)
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["error"]
}

func TestProjectHandler_List(t *testing.T) {
	want := []*model.Project{{ID: "1", Name: "P1", Tasks: []model.Task{}}}
	h := NewProjectHandler(&mockProjectService{
		listFunc: func(context.Context) ([]*model.Project, error) { return want, nil },
	})

	rec := serve(projectMux(h), "GET", "/api/projects", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []*model.Project
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	rec := serve(projectMux(NewProjectHandler(&mockProjectService{})), "GET", "/api/projects", "")
	if body := bytes.TrimSpace(rec.Body.Bytes()); string(body) != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	rec := serve(projectMux(NewProjectHandler(&mockProjectService{})), "GET", "/api/projects/missing", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "not_found" {
		t.Errorf("expected not_found, got %q", code)
	}
}

func TestProjectHandler_Create(t *testing.T) {
	var got *model.Project
	h := NewProjectHandler(&mockProjectService{
		createFunc: func(_ context.Context, p *model.Project) error {
			got = p
			p.ID = "p-1"
			return nil
		},
	})

	rec := serve(projectMux(h), "POST", "/api/projects",
		`{"name":"Cafe","description":"coffee","budget":5000,"startDate":"2024-06-01"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Name != "Cafe" || got.Budget != 5000 || got.StartDate == nil || got.StartDate.Day() != 1 {
		t.Errorf("unexpected project passed to service: %+v", got)
	}
}

func TestProjectHandler_Create_BadRequests(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		createFunc: func(context.Context, *model.Project) error {
			t.Error("service must not be called")
			return nil
		},
	})
	cases := map[string]struct {
		body string
		code string
	}{
		"malformed json": {`{"name":`, "invalid_json"},
		"unknown field":  {`{"name":"x","owner":"y"}`, "invalid_json"},
		"bad date":       {`{"name":"x","startDate":"June"}`, "invalid_input"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(projectMux(h), "POST", "/api/projects", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if code := errorCode(t, rec); code != tc.code {
				t.Errorf("expected %q, got %q", tc.code, code)
			}
		})
	}
}

func TestProjectHandler_Update_PassesOnlySentFields(t *testing.T) {
	var gotID string
	var gotPatch model.ProjectPatch
	h := NewProjectHandler(&mockProjectService{
		updateFunc: func(_ context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			gotID, gotPatch = id, patch
			return &model.Project{ID: id, Status: *patch.Status}, nil
		},
	})

	rec := serve(projectMux(h), "PUT", "/api/projects/p-9", `{"status":"In Progress"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "p-9" {
		t.Errorf("expected id p-9, got %s", gotID)
	}
	if gotPatch.Status == nil || *gotPatch.Status != "In Progress" {
		t.Errorf("expected status patch, got %+v", gotPatch)
	}
	if gotPatch.Name != nil || gotPatch.Budget != nil || gotPatch.StartDate != nil {
		t.Errorf("expected unsent fields to stay nil, got %+v", gotPatch)
	}
}

func TestProjectHandler_Update_EmptyDateClears(t *testing.T) {
	var gotPatch model.ProjectPatch
	h := NewProjectHandler(&mockProjectService{
		updateFunc: func(_ context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
			gotPatch = patch
			return &model.Project{ID: id}, nil
		},
	})

	rec := serve(projectMux(h), "PUT", "/api/projects/p-9", `{"startDate":"","endDate":null}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotPatch.ClearStartDate || gotPatch.StartDate != nil {
		t.Errorf("expected startDate clear, got %+v", gotPatch)
	}
	if gotPatch.ClearEndDate || gotPatch.EndDate != nil {
		t.Errorf("expected null endDate to leave the date unchanged, got %+v", gotPatch)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		deleteFunc: func(_ context.Context, id string) error {
			if id == "missing" {
				return repository.ErrNotFound
			}
			return nil
		},
	})

	if rec := serve(projectMux(h), "DELETE", "/api/projects/p-1", ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec := serve(projectMux(h), "DELETE", "/api/projects/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestProjectHandler_AddTask(t *testing.T) {
	var gotProject string
	h := NewProjectHandler(&mockProjectService{
		addTaskFunc: func(_ context.Context, projectID string, task *model.Task) error {
			gotProject = projectID
			task.ID = "t-1"
			task.Status = model.TaskStatusPending
			return nil
		},
	})

	rec := serve(projectMux(h), "POST", "/api/projects/p-1/tasks", `{"title":"Sign lease","estimatedHours":3}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var task model.Task
	_ = json.NewDecoder(rec.Body).Decode(&task)
	if gotProject != "p-1" || task.ID != "t-1" || task.Status != "Pending" || task.EstimatedHours != 3 {
		t.Errorf("unexpected task %+v (project %s)", task, gotProject)
	}
}

func TestProjectHandler_AddTask_InvalidInput(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{
		addTaskFunc: func(context.Context, string, *model.Task) error { return service.ErrInvalidInput },
	})
	rec := serve(projectMux(h), "POST", "/api/projects/p-1/tasks", `{"title":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
