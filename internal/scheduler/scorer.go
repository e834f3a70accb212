package scheduler

import (
	"github.com/alexanderramin/telos/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// AlignmentScore is the driver-weighted average of a project's scores:
// sum(score * weight) over the project's scores divided by the total weight
// of all drivers. Scores against unknown drivers weigh nothing. A zero total
// weight yields 0.
func AlignmentScore(project domain.Project, drivers []domain.Driver) float64 {
	weights := make([]float64, len(drivers))
	byID := make(map[string]float64, len(drivers))
	for i, d := range drivers {
		weights[i] = float64(d.Weight)
		byID[d.ID] = float64(d.Weight)
	}

	totalWeight := floats.Sum(weights)
	if totalWeight == 0 {
		return 0
	}

	scores := make([]float64, len(project.Scores))
	scoreWeights := make([]float64, len(project.Scores))
	for i, s := range project.Scores {
		scores[i] = float64(s.Score)
		scoreWeights[i] = byID[s.DriverID]
	}

	return floats.Dot(scores, scoreWeights) / totalWeight
}
