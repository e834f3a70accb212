// Package seed holds the initial portfolio loaded into an empty database.
package seed

import "github.com/alexanderramin/telos/internal/domain"

func Drivers() []domain.Driver {
	return []domain.Driver{
		{ID: "d1", Name: "Increase ROI", Weight: 8},
		{ID: "d2", Name: "Market Impact", Weight: 7},
		{ID: "d3", Name: "Reduce Operational Risk", Weight: 5},
		{ID: "d4", Name: "Improve Customer Satisfaction", Weight: 6},
	}
}

func scores(roi, market, risk, satisfaction int) []domain.ProjectScore {
	return []domain.ProjectScore{
		{DriverID: "d1", Score: roi},
		{DriverID: "d2", Score: market},
		{DriverID: "d3", Score: risk},
		{DriverID: "d4", Score: satisfaction},
	}
}

func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:          "p1",
			Name:        "QuantumLeap CRM",
			Description: "Next-gen customer relationship management platform.",
			Budget:      500000,
			Risk:        4,
			StartWeek:   1,
			Duration:    12,
			Scores:      scores(9, 8, 3, 7),
		},
		{
			ID:          "p2",
			Name:        "Project Nebula",
			Description: "Cloud infrastructure migration and optimization.",
			Budget:      750000,
			Risk:        7,
			StartWeek:   3,
			Duration:    16,
			Scores:      scores(7, 5, 9, 4),
		},
		{
			ID:          "p3",
			Name:        "Orion Analytics",
			Description: "Data analytics platform for sales forecasting.",
			Budget:      300000,
			Risk:        3,
			StartWeek:   1,
			Duration:    8,
			Scores:      scores(8, 7, 5, 6),
		},
		{
			ID:          "p4",
			Name:        "Helios Mobile App",
			Description: "A new consumer-facing mobile application.",
			Budget:      400000,
			Risk:        6,
			StartWeek:   6,
			Duration:    10,
			Scores:      scores(6, 9, 2, 8),
		},
	}
}

func Resources() []domain.Resource {
	return []domain.Resource{
		{ID: "r1", Name: "Alice", Capacity: 40},
		{ID: "r2", Name: "Bob", Capacity: 40},
		{ID: "r3", Name: "Charlie", Capacity: 30},
		{ID: "r4", Name: "Diana", Capacity: 40},
	}
}

func Tasks() []domain.Task {
	return []domain.Task{
		// QuantumLeap CRM
		{ID: "t1", ProjectID: "p1", Name: "UI/UX Design", ResourceID: "r1", StartWeek: 1, Duration: 4, EstimatedHours: 160},
		{ID: "t2", ProjectID: "p1", Name: "API Development", ResourceID: "r2", StartWeek: 2, Duration: 6, EstimatedHours: 240},
		{ID: "t3", ProjectID: "p1", Name: "Frontend Dev", ResourceID: "r1", StartWeek: 5, Duration: 8, EstimatedHours: 320},
		{ID: "t4", ProjectID: "p1", Name: "QA Testing", ResourceID: "r3", StartWeek: 10, Duration: 3, EstimatedHours: 90},

		// Project Nebula
		{ID: "t5", ProjectID: "p2", Name: "Infra Audit", ResourceID: "r4", StartWeek: 3, Duration: 4, EstimatedHours: 160},
		{ID: "t6", ProjectID: "p2", Name: "Migration Plan", ResourceID: "r2", StartWeek: 5, Duration: 2, EstimatedHours: 80},
		{ID: "t7", ProjectID: "p2", Name: "Execution Phase 1", ResourceID: "r2", StartWeek: 7, Duration: 8, EstimatedHours: 320},
		{ID: "t8", ProjectID: "p2", Name: "Execution Phase 2", ResourceID: "r4", StartWeek: 9, Duration: 8, EstimatedHours: 320},

		// Orion Analytics
		{ID: "t9", ProjectID: "p3", Name: "Data Modeling", ResourceID: "r3", StartWeek: 1, Duration: 4, EstimatedHours: 120},
		{ID: "t10", ProjectID: "p3", Name: "Dashboard Dev", ResourceID: "r1", StartWeek: 3, Duration: 6, EstimatedHours: 240},

		// Helios Mobile App
		{ID: "t11", ProjectID: "p4", Name: "Prototyping", ResourceID: "r3", StartWeek: 6, Duration: 4, EstimatedHours: 120},
		{ID: "t12", ProjectID: "p4", Name: "Backend Services", ResourceID: "r2", StartWeek: 8, Duration: 8, EstimatedHours: 320},
	}
}
