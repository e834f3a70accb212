package scheduler

import "github.com/alexanderramin/telos/internal/domain"

// UnderUtilizedRatio is the share of capacity below which a non-empty cell
// counts as under-utilized.
const UnderUtilizedRatio = 0.75

// Classify buckets a cell's hours against the owning resource's capacity.
// Zero hours classify as optimal; IsEmpty distinguishes them for display.
func Classify(hours, capacity float64) domain.CellLoad {
	switch {
	case hours > capacity:
		return domain.LoadOver
	case hours > 0 && hours < capacity*UnderUtilizedRatio:
		return domain.LoadUnder
	default:
		return domain.LoadOptimal
	}
}

// IsEmpty reports whether a cell carries no hours at all.
func IsEmpty(hours float64) bool {
	return hours == 0
}
