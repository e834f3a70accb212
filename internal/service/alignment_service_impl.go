package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/alexanderramin/telos/internal/scheduler"
)

type alignmentService struct {
	drivers  repository.DriverRepo
	projects repository.ProjectRepo
}

func NewAlignmentService(drivers repository.DriverRepo, projects repository.ProjectRepo) AlignmentService {
	return &alignmentService{drivers: drivers, projects: projects}
}

// Rank scores every project against the current driver weights, best first.
func (s *alignmentService) Rank(ctx context.Context) (*app.AlignmentResponse, error) {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing drivers: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	resp := &app.AlignmentResponse{
		Drivers:  make([]app.DriverWeight, 0, len(drivers)),
		Projects: make([]app.ProjectAlignment, 0, len(projects)),
	}
	for _, d := range drivers {
		resp.Drivers = append(resp.Drivers, app.DriverWeight{DriverID: d.ID, Name: d.Name, Weight: d.Weight})
		resp.TotalWeight += d.Weight
	}
	for _, r := range scheduler.RankProjects(projects, drivers) {
		resp.Projects = append(resp.Projects, app.ProjectAlignment{
			Rank:        r.Rank,
			ProjectID:   r.Project.ID,
			Name:        r.Project.Name,
			Description: r.Project.Description,
			Score:       r.Score,
		})
	}
	return resp, nil
}
