package domain

import "fmt"

// Score and risk bounds shared by projects and scenario modeling.
const (
	MinScore = 1
	MaxScore = 10
	MinRisk  = 1
	MaxRisk  = 10
)

type ProjectScore struct {
	DriverID string `json:"driverId"`
	Score    int    `json:"score"`
}

type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Budget      float64        `json:"budget"`
	Risk        float64        `json:"risk"` // lower is better
	StartWeek   int            `json:"startWeek"`
	Duration    int            `json:"duration"` // weeks
	Scores      []ProjectScore `json:"scores"`
}

// EndWeek returns the first week after the project finishes.
func (p *Project) EndWeek() int {
	return p.StartWeek + p.Duration
}

// ScoreFor returns the project's score against a driver, or false when the
// project was never scored on it.
func (p *Project) ScoreFor(driverID string) (int, bool) {
	for _, s := range p.Scores {
		if s.DriverID == driverID {
			return s.Score, true
		}
	}
	return 0, false
}

// Validate checks the project's own fields. Driver references in Scores are
// checked by the storage layer.
func (p *Project) Validate() error {
	var errs ValidationErrors
	if p.ID == "" {
		errs = append(errs, ValidationError{Field: "project.id", Value: p.ID, Message: "is required"})
	}
	if p.Name == "" {
		errs = append(errs, ValidationError{Field: "project.name", Value: p.Name, Message: "is required"})
	}
	if p.Budget < 0 {
		errs = append(errs, ValidationError{Field: "project.budget", Value: p.Budget, Message: "must not be negative"})
	}
	if p.Risk < MinRisk || p.Risk > MaxRisk {
		errs = append(errs, ValidationError{Field: "project.risk", Value: p.Risk, Message: fmt.Sprintf("must be between %d and %d", MinRisk, MaxRisk)})
	}
	if p.StartWeek < 1 {
		errs = append(errs, ValidationError{Field: "project.start_week", Value: p.StartWeek, Message: "must be at least 1"})
	}
	if p.Duration < 1 {
		errs = append(errs, ValidationError{Field: "project.duration", Value: p.Duration, Message: "must be at least 1 week"})
	}
	seen := make(map[string]bool, len(p.Scores))
	for i, s := range p.Scores {
		field := fmt.Sprintf("project.scores[%d]", i)
		if s.DriverID == "" {
			errs = append(errs, ValidationError{Field: field + ".driver_id", Value: s.DriverID, Message: "is required"})
		} else if seen[s.DriverID] {
			errs = append(errs, ValidationError{Field: field + ".driver_id", Value: s.DriverID, Message: "is duplicated"})
		}
		seen[s.DriverID] = true
		if s.Score < MinScore || s.Score > MaxScore {
			errs = append(errs, ValidationError{Field: field + ".score", Value: s.Score, Message: fmt.Sprintf("must be between %d and %d", MinScore, MaxScore)})
		}
	}
	return errs.OrNil()
}
