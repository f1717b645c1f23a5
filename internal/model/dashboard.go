package model

// DashboardSummary は GET /api/dashboard/stats のレスポンス。リクエストごとに再計算され、保存されない。
type DashboardSummary struct {
	Projects      ProjectCounts  `json:"projects"`
	TimeTracking  TimeTotals     `json:"timeTracking"`
	MarketTrends  []MarketTrend  `json:"marketTrends"`
	BusinessIdeas []BusinessIdea `json:"businessIdeas"`
}

type ProjectCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type TimeTotals struct {
	TotalMinutes int     `json:"totalMinutes"`
	TotalHours   float64 `json:"totalHours"`
	TotalEntries int     `json:"totalEntries"`
}
