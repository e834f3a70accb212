package importer

import (
	"sort"

	"github.com/alexanderramin/telos/internal/domain"
)

// Convert maps an ImportSchema onto domain objects in file order. Call
// ValidateImportSchema first; Convert does not check references.
func Convert(schema *ImportSchema) *domain.Portfolio {
	p := &domain.Portfolio{
		Drivers:   make([]domain.Driver, 0, len(schema.Drivers)),
		Projects:  make([]domain.Project, 0, len(schema.Projects)),
		Resources: make([]domain.Resource, 0, len(schema.Resources)),
		Tasks:     make([]domain.Task, 0, len(schema.Tasks)),
	}

	// Score maps carry no order; keep them in driver order for stable output.
	driverOrder := make(map[string]int, len(schema.Drivers))
	for i, d := range schema.Drivers {
		weight := domain.IntFromPtrWithDefault(DefaultDriverWeight, d.Weight)
		p.Drivers = append(p.Drivers, domain.Driver{ID: d.ID, Name: d.Name, Weight: weight})
		driverOrder[d.ID] = i
	}

	for _, pr := range schema.Projects {
		scores := make([]domain.ProjectScore, 0, len(pr.Scores))
		for driverID, score := range pr.Scores {
			scores = append(scores, domain.ProjectScore{DriverID: driverID, Score: score})
		}
		sort.Slice(scores, func(i, j int) bool {
			oi, iok := driverOrder[scores[i].DriverID]
			oj, jok := driverOrder[scores[j].DriverID]
			if iok != jok {
				return iok
			}
			if oi != oj {
				return oi < oj
			}
			return scores[i].DriverID < scores[j].DriverID
		})
		p.Projects = append(p.Projects, domain.Project{
			ID:          pr.ID,
			Name:        pr.Name,
			Description: pr.Description,
			Budget:      pr.Budget,
			Risk:        pr.Risk,
			StartWeek:   pr.StartWeek,
			Duration:    pr.Duration,
			Scores:      scores,
		})
	}

	for _, r := range schema.Resources {
		p.Resources = append(p.Resources, domain.Resource{ID: r.ID, Name: r.Name, Capacity: r.Capacity})
	}

	for _, t := range schema.Tasks {
		p.Tasks = append(p.Tasks, domain.Task{
			ID:             t.ID,
			ProjectID:      t.ProjectID,
			Name:           t.Name,
			EstimatedHours: t.EstimatedHours,
			ResourceID:     t.ResourceID,
			StartWeek:      t.StartWeek,
			Duration:       t.Duration,
		})
	}
	return p
}

// FromPortfolio is the inverse of Convert, used to write a portfolio back out
// as an import file.
func FromPortfolio(p *domain.Portfolio) *ImportSchema {
	schema := &ImportSchema{}
	for _, d := range p.Drivers {
		w := d.Weight
		schema.Drivers = append(schema.Drivers, DriverImport{ID: d.ID, Name: d.Name, Weight: &w})
	}
	for _, pr := range p.Projects {
		scores := make(map[string]int, len(pr.Scores))
		for _, s := range pr.Scores {
			scores[s.DriverID] = s.Score
		}
		schema.Projects = append(schema.Projects, ProjectImport{
			ID:          pr.ID,
			Name:        pr.Name,
			Description: pr.Description,
			Budget:      pr.Budget,
			Risk:        pr.Risk,
			StartWeek:   pr.StartWeek,
			Duration:    pr.Duration,
			Scores:      scores,
		})
	}
	for _, r := range p.Resources {
		schema.Resources = append(schema.Resources, ResourceImport{ID: r.ID, Name: r.Name, Capacity: r.Capacity})
	}
	for _, t := range p.Tasks {
		schema.Tasks = append(schema.Tasks, TaskImport{
			ID:             t.ID,
			ProjectID:      t.ProjectID,
			Name:           t.Name,
			EstimatedHours: t.EstimatedHours,
			ResourceID:     t.ResourceID,
			StartWeek:      t.StartWeek,
			Duration:       t.Duration,
		})
	}
	return schema
}
