package handler

import (
	"net/http"

	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/service"
)

// TimeEntryHandler は作業時間記録の HTTP ハンドラ
type TimeEntryHandler struct {
	timeEntryService service.TimeEntryService
}

// NewTimeEntryHandler は TimeEntryHandler を生成する
func NewTimeEntryHandler(timeEntryService service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

// List は GET /api/time-entries を処理する
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeEntryService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*model.TimeEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

type startRequest struct {
	ProjectID   string `json:"projectId"`
	TaskID      string `json:"taskId"`
	Description string `json:"description"`
}

// Start は POST /api/time-entries/start を処理する
func (h *TimeEntryHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	entry := &model.TimeEntry{
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		Description: req.Description,
	}
	if err := h.timeEntryService.Start(r.Context(), entry); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Stop は POST /api/time-entries/{id}/stop を処理する。Running でなければ 400、存在しなければ 404
func (h *TimeEntryHandler) Stop(w http.ResponseWriter, r *http.Request) {
	entry, err := h.timeEntryService.Stop(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Summary は GET /api/time-entries/summary/{projectId} を処理する
func (h *TimeEntryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.timeEntryService.Summary(r.Context(), r.PathValue("projectId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Delete は DELETE /api/time-entries/{id} を処理する
func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timeEntryService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
