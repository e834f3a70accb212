package app

// ProjectAlignment is one row of the ranked project list.
type ProjectAlignment struct {
	Rank        int     `json:"rank"`
	ProjectID   string  `json:"projectId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// DriverWeight is a driver as shown next to the ranking.
type DriverWeight struct {
	DriverID string `json:"driverId"`
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
}

type AlignmentResponse struct {
	Drivers     []DriverWeight     `json:"drivers"`
	TotalWeight int                `json:"totalWeight"`
	Projects    []ProjectAlignment `json:"projects"`
}
