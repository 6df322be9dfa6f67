package engine

import (
	"sort"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

// RankedGoal is one entry of the ranked queue: the goal (with normalized
// status), its score, and the schedule/deadline annotations the UI shows
// alongside it.
type RankedGoal struct {
	Goal              models.Goal `json:"goal"`
	Score             float64     `json:"score"`
	NextPlannedAt     *time.Time  `json:"next_planned_at"`
	DaysUntilDeadline *int        `json:"days_until_deadline"`
}

// Rank orders scored entries descending by score. Ties break by ascending
// order, then by display label (case-respecting byte compare), and finally
// by input position: the sort is stable, so entries equal on all
// comparators keep their relative order. The input slice is not modified.
func Rank(entries []RankedGoal) []RankedGoal {
	ranked := append([]RankedGoal(nil), entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return tieLess(a.Goal, b.Goal)
	})
	return ranked
}

// tieLess is the shared tie-break chain: ascending order, then ascending
// display label. Strict less, so equal goals report false and stable sorts
// preserve input order.
func tieLess(a, b models.Goal) bool {
	ao, bo := orderOrDefault(a), orderOrDefault(b)
	if ao != bo {
		return ao < bo
	}
	return a.DisplayLabel() < b.DisplayLabel()
}
