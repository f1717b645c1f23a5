package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/ventureplan/backend/internal/model"
	"github.com/ventureplan/backend/internal/service"
)

// CatalogHandler は市場トレンドとビジネスアイデアの HTTP ハンドラ
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler は CatalogHandler を生成する
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListTrends は GET /api/market-trends を処理する
func (h *CatalogHandler) ListTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.catalogService.ListTrends(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

// SearchTrends は GET /api/market-trends/search?q= を処理する
func (h *CatalogHandler) SearchTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.catalogService.SearchTrends(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

// ListIdeas は GET /api/business-ideas を処理する
func (h *CatalogHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.catalogService.ListIdeas(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideas)
}

type generateIdeasRequest struct {
	MinInvestment *float64 `json:"minInvestment"`
	MaxInvestment *float64 `json:"maxInvestment"`
	Category      string   `json:"category"`
}

// GenerateIdeas は POST /api/business-ideas/generate を処理する。空ボディは全件
func (h *CatalogHandler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req generateIdeasRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	ideas, err := h.catalogService.GenerateIdeas(r.Context(), model.IdeaCriteria{
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
		Category:      req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideas)
}
