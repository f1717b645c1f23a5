package model

// ProjectionInput is the parameter set of a profit estimation.
// GrowthRate is a monthly percentage.
type ProjectionInput struct {
	InitialInvestment float64 `json:"initialInvestment"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	GrowthRate        float64 `json:"growthRate"`
	Months            int     `json:"months"`
}

// MonthRecord is one month of a projected trajectory. Monetary values are
// rounded for display; CumulativeProfit is rounded from unrounded running sums.
type MonthRecord struct {
	Month            int     `json:"month"`
	Revenue          float64 `json:"revenue"`
	Expenses         float64 `json:"expenses"`
	Profit           float64 `json:"profit"`
	CumulativeProfit float64 `json:"cumulativeProfit"`
	BreakEven        bool    `json:"breakEven"`
	BreakEvenMonth   *int    `json:"breakEvenMonth"`
}

// ProjectionSummary is derived from the month records. ROI is nil when the
// initial investment is zero.
type ProjectionSummary struct {
	TotalRevenue   float64  `json:"totalRevenue"`
	TotalExpenses  float64  `json:"totalExpenses"`
	TotalProfit    float64  `json:"totalProfit"`
	ROI            *float64 `json:"roi"`
	BreakEvenMonth *int     `json:"breakEvenMonth"`
}

// Projection is the full result returned by POST /api/profit-estimation.
type Projection struct {
	Calculations []MonthRecord     `json:"calculations"`
	Summary      ProjectionSummary `json:"summary"`
}
