package handler

import (
	"net/http"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/model"
)

// ProfitEstimation は POST /api/profit-estimation を処理する。計算は状態を持たない
func ProfitEstimation(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectionInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	projection, err := analytics.Project(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}
