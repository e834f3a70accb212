package app

// PortfolioMetrics is the baseline or scenario summary shown side by side.
type PortfolioMetrics struct {
	TotalBudget float64 `json:"totalBudget"`
	Timeline    int     `json:"timeline"`
	AvgRisk     float64 `json:"avgRisk"`
}

// ImportResult holds the outcome of a portfolio import.
type ImportResult struct {
	DriverCount   int `json:"drivers"`
	ProjectCount  int `json:"projects"`
	ResourceCount int `json:"resources"`
	TaskCount     int `json:"tasks"`
}

// SeedResult reports whether the initial portfolio was written.
type SeedResult struct {
	Seeded bool         `json:"seeded"`
	Counts ImportResult `json:"counts"`
}
