package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/repository"
	"github.com/ventureplan/backend/internal/service"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeServiceError は下位レイヤーのエラーを HTTP ステータスとエラーコードに変換する
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, analytics.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, "invalid_parameter")
	case errors.Is(err, analytics.ErrInvalidInterval):
		writeError(w, http.StatusBadRequest, "invalid_interval")
	case errors.Is(err, analytics.ErrInvalidState):
		writeError(w, http.StatusBadRequest, "invalid_state")
	case errors.Is(err, analytics.ErrDivisionUndefined):
		writeError(w, http.StatusBadRequest, "division_undefined")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// decodeJSON は未知のフィールドを拒否してリクエストボディを読み込む
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
