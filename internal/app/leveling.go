package app

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/domain"
)

// GridCell is one resource-week of the leveling grid.
type GridCell struct {
	Week    int             `json:"week"`
	Hours   float64         `json:"hours"`
	Load    domain.CellLoad `json:"load"`
	Empty   bool            `json:"empty"`
	TaskIDs []string        `json:"taskIds,omitempty"`
}

// ResourceRow is one resource's weekly allocation, weeks 1..Weeks.
type ResourceRow struct {
	ResourceID string     `json:"resourceId"`
	Name       string     `json:"name"`
	Capacity   float64    `json:"capacity"`
	Cells      []GridCell `json:"cells"`
}

// OverAllocated returns the weeks in which the resource is over capacity.
func (r *ResourceRow) OverAllocated() []int {
	var weeks []int
	for _, c := range r.Cells {
		if c.Load == domain.LoadOver {
			weeks = append(weeks, c.Week)
		}
	}
	return weeks
}

type LevelingGrid struct {
	Weeks int           `json:"weeks"`
	Rows  []ResourceRow `json:"rows"`
}

// Cell returns the cell for (resourceID, week), or nil when out of range.
func (g *LevelingGrid) Cell(resourceID string, week int) *GridCell {
	for i := range g.Rows {
		if g.Rows[i].ResourceID != resourceID {
			continue
		}
		if week < 1 || week > len(g.Rows[i].Cells) {
			return nil
		}
		return &g.Rows[i].Cells[week-1]
	}
	return nil
}

// SuggestionView is a corrective action as presented to the user. Index is
// its position in the list and is what ApplySuggestionRequest refers to.
type SuggestionView struct {
	Index              int                   `json:"index"`
	Kind               domain.SuggestionKind `json:"type"`
	TaskID             string                `json:"taskId"`
	TaskName           string                `json:"taskName"`
	TargetResourceID   string                `json:"targetResourceId,omitempty"`
	TargetResourceName string                `json:"targetResourceName,omitempty"`
	Message            string                `json:"message"`
}

type SuggestionsRequest struct {
	ResourceID string `json:"resourceId"`
	Week       int    `json:"week"`
}

type SuggestionsResponse struct {
	ResourceID  string           `json:"resourceId"`
	Week        int              `json:"week"`
	Hours       float64          `json:"hours"`
	Capacity    float64          `json:"capacity"`
	Suggestions []SuggestionView `json:"suggestions"`
}

// ApplySuggestionRequest identifies a suggestion by the cell it was offered
// for and its index. Suggestions are recomputed from current data before
// applying, so a stale index is rejected rather than guessed.
type ApplySuggestionRequest struct {
	ResourceID string `json:"resourceId"`
	Week       int    `json:"week"`
	Index      int    `json:"index"`
}

type ApplySuggestionResponse struct {
	Applied SuggestionView `json:"applied"`
	Task    domain.Task    `json:"task"`
}

type LevelingErrorCode string

const (
	LevelingErrInvalidCell       LevelingErrorCode = "INVALID_CELL"
	LevelingErrUnknownSuggestion LevelingErrorCode = "UNKNOWN_SUGGESTION"
)

type LevelingError struct {
	Code    LevelingErrorCode
	Message string
}

func (e *LevelingError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func invalidCell(resourceID string, week int, reason string) *LevelingError {
	return &LevelingError{
		Code:    LevelingErrInvalidCell,
		Message: fmt.Sprintf("%s week %d: %s", resourceID, week, reason),
	}
}

// Validate rejects cell coordinates that cannot exist.
func (r SuggestionsRequest) Validate() error {
	if r.ResourceID == "" {
		return invalidCell(r.ResourceID, r.Week, "resource is required")
	}
	if r.Week < 1 {
		return invalidCell(r.ResourceID, r.Week, "week must be at least 1")
	}
	return nil
}

func (r ApplySuggestionRequest) Validate() error {
	if err := (SuggestionsRequest{ResourceID: r.ResourceID, Week: r.Week}).Validate(); err != nil {
		return err
	}
	if r.Index < 0 {
		return &LevelingError{
			Code:    LevelingErrUnknownSuggestion,
			Message: fmt.Sprintf("index %d is negative", r.Index),
		}
	}
	return nil
}
