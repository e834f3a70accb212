package service

import (
	"context"
	"io"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/export"
	"github.com/alexanderramin/telos/internal/importer"
	"github.com/alexanderramin/telos/internal/repository"
)

type exportService struct {
	repos portfolioRepos
}

func NewExportService(
	drivers repository.DriverRepo,
	projects repository.ProjectRepo,
	resources repository.ResourceRepo,
	tasks repository.TaskRepo,
) ExportService {
	return &exportService{repos: portfolioRepos{
		drivers:   drivers,
		projects:  projects,
		resources: resources,
		tasks:     tasks,
	}}
}

func (s *exportService) Snapshot(ctx context.Context) (*domain.Portfolio, error) {
	return s.repos.load(ctx)
}

// ExportCSV writes the four-block portfolio document.
func (s *exportService) ExportCSV(ctx context.Context, w io.Writer) error {
	p, err := s.repos.load(ctx)
	if err != nil {
		return err
	}
	return export.WritePortfolio(w, p.Drivers, p.Projects, p.Resources, p.Tasks)
}

// ExportSchema writes the portfolio as an import file, so an export can be
// fed back through import unchanged.
func (s *exportService) ExportSchema(ctx context.Context, w io.Writer, format importer.Format) error {
	p, err := s.repos.load(ctx)
	if err != nil {
		return err
	}
	return importer.EncodeImportSchema(w, importer.FromPortfolio(p), format)
}
