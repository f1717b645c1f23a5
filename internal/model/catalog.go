package model

// MarketTrend is a read-only market sector reference record.
type MarketTrend struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Growth      float64 `json:"growth"`
	Demand      string  `json:"demand"`
	Opportunity string  `json:"opportunity"`
}

// BusinessIdea is a read-only catalog record. Feasibility is a static 0-100 score.
type BusinessIdea struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Investment   float64 `json:"investment"`
	ProjectedROI float64 `json:"projectedROI"`
	Feasibility  int     `json:"feasibility"`
}

// IdeaCriteria narrows the idea catalog. Nil bounds and an empty category
// impose no constraint.
type IdeaCriteria struct {
	MinInvestment *float64 `json:"minInvestment"`
	MaxInvestment *float64 `json:"maxInvestment"`
	Category      string   `json:"category"`
}

// DefaultMarketTrends returns the seed trend catalog.
func DefaultMarketTrends() []MarketTrend {
	return []MarketTrend{
		{ID: 1, Name: "AI & Machine Learning", Growth: 42, Demand: "High", Opportunity: "Enterprise automation, predictive analytics"},
		{ID: 2, Name: "E-commerce", Growth: 28, Demand: "High", Opportunity: "D2C brands, social commerce"},
		{ID: 3, Name: "Remote Work Tools", Growth: 35, Demand: "High", Opportunity: "Collaboration software, virtual offices"},
		{ID: 4, Name: "Health Tech", Growth: 38, Demand: "High", Opportunity: "Telemedicine, wellness apps"},
		{ID: 5, Name: "Sustainable Products", Growth: 25, Demand: "Medium", Opportunity: "Eco-friendly packaging, green tech"},
		{ID: 6, Name: "EdTech", Growth: 22, Demand: "Medium", Opportunity: "Online learning, skill development"},
		{ID: 7, Name: "FinTech", Growth: 30, Demand: "High", Opportunity: "Digital payments, blockchain"},
		{ID: 8, Name: "Cybersecurity", Growth: 45, Demand: "High", Opportunity: "Cloud security, identity management"},
	}
}

// DefaultBusinessIdeas returns the seed idea catalog.
func DefaultBusinessIdeas() []BusinessIdea {
	return []BusinessIdea{
		{ID: 1, Title: "AI-Powered Business Consultant", Category: "AI & Machine Learning", Investment: 15000, ProjectedROI: 180, Feasibility: 85},
		{ID: 2, Title: "Niche E-commerce Platform", Category: "E-commerce", Investment: 8000, ProjectedROI: 120, Feasibility: 90},
		{ID: 3, Title: "Remote Team Management SaaS", Category: "Remote Work Tools", Investment: 25000, ProjectedROI: 200, Feasibility: 75},
		{ID: 4, Title: "Telemedicine App", Category: "Health Tech", Investment: 35000, ProjectedROI: 250, Feasibility: 70},
		{ID: 5, Title: "Sustainable Product Marketplace", Category: "Sustainable Products", Investment: 12000, ProjectedROI: 140, Feasibility: 80},
		{ID: 6, Title: "Online Course Platform", Category: "EdTech", Investment: 10000, ProjectedROI: 160, Feasibility: 88},
		{ID: 7, Title: "Payment Gateway Solution", Category: "FinTech", Investment: 40000, ProjectedROI: 300, Feasibility: 65},
		{ID: 8, Title: "Security Audit Service", Category: "Cybersecurity", Investment: 20000, ProjectedROI: 190, Feasibility: 78},
	}
}
