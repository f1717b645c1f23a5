package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ventureplan/backend/internal/analytics"
	"github.com/ventureplan/backend/internal/repository"
	"github.com/ventureplan/backend/internal/service"
)

func TestCORS_SetsHeaders(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected origin http://localhost:3000, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "DELETE") {
		t.Errorf("expected DELETE to be allowed, got %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	h := New(&mockDB{}, "http://localhost:3000")

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest("OPTIONS", "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for OPTIONS, got %d", rec.Code)
	}
	if called {
		t.Error("inner handler should not be called for OPTIONS preflight")
	}
}

func TestChain_AppliesOutermostFirst(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	Chain(inner, mw("a"), mw("b")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if strings.Join(order, ",") != "a,b,handler" {
		t.Errorf("expected a,b,handler, got %v", order)
	}
}

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{fmt.Errorf("project x: %w", repository.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("months: %w", analytics.ErrInvalidParameter), http.StatusBadRequest, "invalid_parameter"},
		{analytics.ErrInvalidInterval, http.StatusBadRequest, "invalid_interval"},
		{fmt.Errorf("entry: %w", analytics.ErrInvalidState), http.StatusBadRequest, "invalid_state"},
		{analytics.ErrDivisionUndefined, http.StatusBadRequest, "division_undefined"},
		{service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeServiceError(rec, httptest.NewRequest("GET", "/", nil), tc.err)

		if rec.Code != tc.wantStatus {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.wantStatus, rec.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["error"] != tc.wantCode {
			t.Errorf("%v: expected code %q, got %q", tc.err, tc.wantCode, body["error"])
		}
	}
}
