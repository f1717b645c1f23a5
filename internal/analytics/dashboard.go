package analytics

import (
	"cmp"
	"slices"

	"github.com/ventureplan/backend/internal/model"
)

// TopN is how many trends and ideas the dashboard shows.
const TopN = 3

// Aggregate rolls the entity collections into a dashboard summary.
// Inputs are not modified; ranking sorts stable copies.
func Aggregate(
	projects []*model.Project,
	entries []*model.TimeEntry,
	trends []model.MarketTrend,
	ideas []model.BusinessIdea,
) model.DashboardSummary {
	var counts model.ProjectCounts
	for _, p := range projects {
		if p == nil {
			continue
		}
		counts.Total++
		switch p.Status {
		case model.ProjectStatusInProgress:
			counts.Active++
		case model.ProjectStatusCompleted:
			counts.Completed++
		}
	}

	tracked := SummarizeTime(entries)

	return model.DashboardSummary{
		Projects: counts,
		TimeTracking: model.TimeTotals{
			TotalMinutes: tracked.TotalMinutes,
			TotalHours:   tracked.TotalHours,
			TotalEntries: len(entries),
		},
		MarketTrends: topN(trends, func(a, b model.MarketTrend) int {
			return cmp.Compare(b.Growth, a.Growth)
		}),
		BusinessIdeas: topN(ideas, func(a, b model.BusinessIdea) int {
			return cmp.Compare(b.ProjectedROI, a.ProjectedROI)
		}),
	}
}

func topN[T any](items []T, cmpFn func(a, b T) int) []T {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []T{}
	}
	slices.SortStableFunc(sorted, cmpFn)
	if len(sorted) > TopN {
		sorted = sorted[:TopN:TopN]
	}
	return sorted
}
