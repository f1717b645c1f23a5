package handler

import (
	"net/http"

	"github.com/ventureplan/backend/internal/service"
)

// DashboardHandler はダッシュボード集計の HTTP ハンドラ
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler は DashboardHandler を生成する
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats は GET /api/dashboard/stats を処理する
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
