package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/service"
)

// parseDate は "YYYY-MM-DD" または RFC3339 の文字列を *time.Time にパースする。
// nil または空文字の場合は nil を返す。
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%w: unparsable date %q", service.ErrInvalidInput, *s)
}

// isEmpty は明示的に空文字が送られたかを返す。更新時は日付のクリアを意味する。
func isEmpty(s *string) bool {
	return s != nil && *s == ""
}

// ProjectHandler はプロジェクト CRUD の HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Budget      *float64 `json:"budget"`
}

func (req projectRequest) toPatch() (model.ProjectPatch, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return model.ProjectPatch{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return model.ProjectPatch{}, err
	}
	return model.ProjectPatch{
		Name:           req.Name,
		Description:    req.Description,
		Status:         req.Status,
		StartDate:      start,
		EndDate:        end,
		Budget:         req.Budget,
		ClearStartDate: isEmpty(req.StartDate),
		ClearEndDate:   isEmpty(req.EndDate),
	}, nil
}

// List は GET /api/projects を処理する
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create は POST /api/projects を処理する
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	project := &model.Project{}
	patch.Apply(project)
	if err := h.projectService.Create(r.Context(), project); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update は PUT /api/projects/{id} を処理する。送られたフィールドだけを更新する
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	project, err := h.projectService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete は DELETE /api/projects/{id} を処理する
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type taskRequest struct {
	Title          string  `json:"title"`
	Status         string  `json:"status"`
	AssignedTo     string  `json:"assignedTo"`
	DueDate        *string `json:"dueDate"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// AddTask は POST /api/projects/{id}/tasks を処理する
func (h *ProjectHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	task := &model.Task{
		Title:          req.Title,
		Status:         req.Status,
		AssignedTo:     req.AssignedTo,
		DueDate:        due,
		EstimatedHours: req.EstimatedHours,
	}
	if err := h.projectService.AddTask(r.Context(), r.PathValue("id"), task); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}
