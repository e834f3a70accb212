package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/importer"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService returns a service that replaces the whole portfolio with
// the contents of an import file.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportPortfolio(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportPortfolioFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "import-portfolio", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	portfolio := importer.Convert(schema)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		res, err := txRepos(tx).replace(ctx, portfolio)
		if err != nil {
			return err
		}
		result = &res
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["drivers"] = result.DriverCount
	fields["projects"] = result.ProjectCount
	fields["resources"] = result.ResourceCount
	fields["tasks"] = result.TaskCount
	return result, nil
}
