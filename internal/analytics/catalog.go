package analytics

import (
	"strings"

	"github.com/ventureplan/backend/internal/model"
)

// FilterIdeas returns the ideas matching c in catalog order. Investment
// bounds are inclusive and the category must match exactly.
func FilterIdeas(catalog []model.BusinessIdea, c model.IdeaCriteria) []model.BusinessIdea {
	out := make([]model.BusinessIdea, 0, len(catalog))
	for _, idea := range catalog {
		if c.MinInvestment != nil && idea.Investment < *c.MinInvestment {
			continue
		}
		if c.MaxInvestment != nil && idea.Investment > *c.MaxInvestment {
			continue
		}
		if c.Category != "" && idea.Category != c.Category {
			continue
		}
		out = append(out, idea)
	}
	return out
}

// SearchTrends matches query case-insensitively against trend names and
// opportunities. An empty query matches everything; whitespace is matched
// literally.
func SearchTrends(trends []model.MarketTrend, query string) []model.MarketTrend {
	q := strings.ToLower(query)
	out := make([]model.MarketTrend, 0, len(trends))
	for _, t := range trends {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Opportunity), q) {
			out = append(out, t)
		}
	}
	return out
}
