package domain

// CellLoad classifies one resource-week against the resource's capacity.
type CellLoad string

const (
	LoadUnder   CellLoad = "under"
	LoadOptimal CellLoad = "optimal"
	LoadOver    CellLoad = "over"
)

// IsValid returns true if the load is a known value.
func (l CellLoad) IsValid() bool {
	switch l {
	case LoadUnder, LoadOptimal, LoadOver:
		return true
	default:
		return false
	}
}

// SuggestionKind is the corrective action a leveling suggestion applies.
type SuggestionKind string

const (
	SuggestDelay    SuggestionKind = "DELAY"
	SuggestReassign SuggestionKind = "REASSIGN"
)

// ViewMode selects which dashboard view is shown.
type ViewMode string

const (
	ViewAlignment ViewMode = "alignment"
	ViewScenario  ViewMode = "scenario"
	ViewLeveling  ViewMode = "leveling"
)

// ViewModes lists the dashboard views in navigation order.
var ViewModes = []ViewMode{ViewAlignment, ViewScenario, ViewLeveling}
