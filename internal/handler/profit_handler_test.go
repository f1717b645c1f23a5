package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ventureplan/backend/internal/model"
)

func profitMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/profit-estimation", ProfitEstimation)
	return mux
}

func TestProfitEstimation_ShortHorizon(t *testing.T) {
	rec := serve(profitMux(), "POST", "/api/profit-estimation",
		`{"initialInvestment":10000,"monthlyRevenue":2000,"monthlyExpenses":1000,"growthRate":5,"months":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got model.Projection
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Calculations) != 3 {
		t.Fatalf("expected 3 months, got %d", len(got.Calculations))
	}
	m3 := got.Calculations[2]
	if m3.Revenue != 2205 || m3.Expenses != 1102 || m3.Profit != 1103 {
		t.Errorf("unexpected month 3 %+v", m3)
	}
	if got.Summary.BreakEvenMonth != nil {
		t.Errorf("expected no break-even, got %d", *got.Summary.BreakEvenMonth)
	}
	if got.Summary.ROI == nil || *got.Summary.ROI != -68.48 {
		t.Errorf("expected roi -68.48, got %v", got.Summary.ROI)
	}
}

func TestProfitEstimation_NullFields(t *testing.T) {
	rec := serve(profitMux(), "POST", "/api/profit-estimation",
		`{"initialInvestment":0,"monthlyRevenue":100,"monthlyExpenses":0,"growthRate":0,"months":1}`)

	body := rec.Body.String()
	if !strings.Contains(body, `"roi":null`) {
		t.Errorf("expected roi null for zero investment, got %s", body)
	}
	if !strings.Contains(body, `"breakEvenMonth":1`) {
		t.Errorf("expected break-even in month 1, got %s", body)
	}
}

func TestProfitEstimation_InvalidParameter(t *testing.T) {
	for _, body := range []string{
		`{"initialInvestment":1000,"monthlyRevenue":100,"monthlyExpenses":50,"growthRate":5,"months":0}`,
		`{"initialInvestment":-1,"monthlyRevenue":100,"monthlyExpenses":50,"growthRate":5,"months":12}`,
		`{"initialInvestment":1000,"monthlyRevenue":100,"monthlyExpenses":50,"growthRate":5,"months":601}`,
	} {
		rec := serve(profitMux(), "POST", "/api/profit-estimation", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
			continue
		}
		if code := errorCode(t, rec); code != "invalid_parameter" {
			t.Errorf("%s: expected invalid_parameter, got %q", body, code)
		}
	}
}

func TestProfitEstimation_RejectsNonIntegerMonths(t *testing.T) {
	rec := serve(profitMux(), "POST", "/api/profit-estimation",
		`{"initialInvestment":1000,"monthlyRevenue":100,"monthlyExpenses":50,"growthRate":5,"months":2.5}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
