package scheduler

import (
	"sort"

	"github.com/alexanderramin/telos/internal/domain"
)

// RankedProject is a project with its alignment score and 1-based rank.
type RankedProject struct {
	Project domain.Project
	Score   float64
	Rank    int
}

// RankProjects scores every project against the current driver weights and
// sorts them by score, highest first. Ties keep their input order.
func RankProjects(projects []domain.Project, drivers []domain.Driver) []RankedProject {
	ranked := make([]RankedProject, len(projects))
	for i, p := range projects {
		ranked[i] = RankedProject{
			Project: p,
			Score:   AlignmentScore(p, drivers),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
