package app

import (
	"context"
	"io"

	"github.com/alexanderramin/telos/internal/importer"
)

type AlignmentUseCase interface {
	Rank(ctx context.Context) (*AlignmentResponse, error)
}

type LevelingUseCase interface {
	Grid(ctx context.Context) (*LevelingGrid, error)
	Suggest(ctx context.Context, req SuggestionsRequest) (*SuggestionsResponse, error)
	Apply(ctx context.Context, req ApplySuggestionRequest) (*ApplySuggestionResponse, error)
}

type ScenarioUseCase interface {
	Show(ctx context.Context) (*ScenarioView, error)
	Adjust(ctx context.Context, req AdjustScenarioRequest) (*ScenarioView, error)
	Reset(ctx context.Context) error
}

type ExportUseCase interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

type ImportPortfolioUseCase interface {
	ImportPortfolio(ctx context.Context, filePath string) (*ImportResult, error)
	ImportPortfolioFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type SeedUseCase interface {
	SeedIfEmpty(ctx context.Context) (*SeedResult, error)
}
