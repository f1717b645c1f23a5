// Package analytics holds the pure computations behind profit estimation,
// time tracking totals, idea filtering and the dashboard. Nothing here does
// I/O; every function works on caller-supplied values and is safe for
// concurrent use.
package analytics

import (
	"fmt"
	"math"

	"github.com/ventureplan/backend/internal/model"
)

const (
	// ExpenseGrowthRate is the fixed monthly expense growth, independent of
	// the revenue growth rate supplied by the caller.
	ExpenseGrowthRate = 0.05

	// MaxMonths bounds the projection horizon (50 years).
	MaxMonths = 600
)

// Project computes the month-by-month trajectory and its summary.
//
// Monthly profit and the running totals are computed from unrounded monthly
// values and rounded once per record, so rounding error does not compound. A month breaks even
// when cumulative revenue minus cumulative expenses exceeds the initial
// investment; the summary reports the first such month.
func Project(in model.ProjectionInput) (*model.Projection, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	revenueFactor := 1 + in.GrowthRate/100
	expenseFactor := 1 + ExpenseGrowthRate

	records := make([]model.MonthRecord, 0, in.Months)
	var cumRevenue, cumExpenses float64
	var breakEvenMonth *int

	for i := 1; i <= in.Months; i++ {
		monthRevenue := in.MonthlyRevenue * math.Pow(revenueFactor, float64(i-1))
		monthExpenses := in.MonthlyExpenses * math.Pow(expenseFactor, float64(i-1))

		cumRevenue += monthRevenue
		cumExpenses += monthExpenses
		net := cumRevenue - cumExpenses - in.InitialInvestment
		if math.IsInf(net, 0) || math.IsNaN(net) {
			return nil, fmt.Errorf("%w: projection overflows at month %d", ErrInvalidParameter, i)
		}

		rec := model.MonthRecord{
			Month:            i,
			Revenue:          roundAmount(monthRevenue),
			Expenses:         roundAmount(monthExpenses),
			Profit:           roundHalfUp(monthRevenue - monthExpenses),
			CumulativeProfit: roundAmount(net),
		}
		if net > 0 {
			month := i
			rec.BreakEven = true
			rec.BreakEvenMonth = &month
			if breakEvenMonth == nil {
				breakEvenMonth = &month
			}
		}
		records = append(records, rec)
	}

	summary := model.ProjectionSummary{
		TotalRevenue:   roundAmount(cumRevenue),
		TotalExpenses:  roundAmount(cumExpenses),
		TotalProfit:    records[len(records)-1].CumulativeProfit,
		BreakEvenMonth: breakEvenMonth,
	}
	if roi, err := ROI(summary.TotalProfit, in.InitialInvestment); err == nil {
		summary.ROI = &roi
	}

	return &model.Projection{Calculations: records, Summary: summary}, nil
}

// ROI returns totalProfit / investment * 100 rounded to two decimals.
// A zero investment yields ErrDivisionUndefined.
func ROI(totalProfit, investment float64) (float64, error) {
	if investment == 0 {
		return 0, ErrDivisionUndefined
	}
	return round2(totalProfit / investment * 100), nil
}

func validateInput(in model.ProjectionInput) error {
	if in.Months <= 0 {
		return fmt.Errorf("%w: months must be a positive integer, got %d", ErrInvalidParameter, in.Months)
	}
	if in.Months > MaxMonths {
		return fmt.Errorf("%w: months must not exceed %d, got %d", ErrInvalidParameter, MaxMonths, in.Months)
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"initialInvestment", in.InitialInvestment},
		{"monthlyRevenue", in.MonthlyRevenue},
		{"monthlyExpenses", in.MonthlyExpenses},
		{"growthRate", in.GrowthRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidParameter, f.name)
		}
	}
	if in.InitialInvestment < 0 {
		return fmt.Errorf("%w: initialInvestment must not be negative", ErrInvalidParameter)
	}
	return nil
}
