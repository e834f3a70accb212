package service

import (
	"context"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/seed"
)

type seedService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, observers ...UseCaseObserver) SeedService {
	return &seedService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// SeedIfEmpty writes the sample portfolio when no drivers, projects,
// resources or tasks exist yet. Otherwise it reports the current counts.
func (s *seedService) SeedIfEmpty(ctx context.Context) (result *app.SeedResult, err error) {
	done := track(ctx, s.observer, "seed-if-empty", nil)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := txRepos(tx)
		counts, err := repos.counts(ctx)
		if err != nil {
			return err
		}
		if counts != (app.ImportResult{}) {
			result = &app.SeedResult{Seeded: false, Counts: counts}
			return nil
		}
		written, err := repos.replace(ctx, samplePortfolio())
		if err != nil {
			return err
		}
		result = &app.SeedResult{Seeded: true, Counts: written}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *seedService) Reseed(ctx context.Context) (result *app.SeedResult, err error) {
	done := track(ctx, s.observer, "reseed", nil)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		written, err := txRepos(tx).replace(ctx, samplePortfolio())
		if err != nil {
			return err
		}
		result = &app.SeedResult{Seeded: true, Counts: written}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func samplePortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Drivers:   seed.Drivers(),
		Projects:  seed.Projects(),
		Resources: seed.Resources(),
		Tasks:     seed.Tasks(),
	}
}
