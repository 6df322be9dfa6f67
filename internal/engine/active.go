package engine

import (
	"github.com/julianstephens/stride/internal/models"
)

// SelectActive resolves the single goal to present as currently active, or
// nil when nothing qualifies. Precedence:
//
//  1. A UI hint naming an existing goal wins unless that goal is done or
//     invalid. The hint deliberately overrides data-derived status so an
//     explicit user selection is never second-guessed.
//  2. Otherwise the minimum of the goals marked active, by the ranking
//     tie-break chain (order, then label, then input position).
//
// Multiple goals marked active is tolerated data inconsistency: the choice
// here is deterministic and the underlying data is never corrected. The
// returned goal is an independent copy.
func SelectActive(goals []models.Goal, hintID string) *models.Goal {
	if hintID != "" {
		for _, g := range goals {
			if g.ID == hintID && !models.NormalizeStatus(g.Status).Terminal() {
				hinted := g.Clone()
				return &hinted
			}
		}
	}

	var best *models.Goal
	for _, g := range goals {
		if models.NormalizeStatus(g.Status) != models.StatusActive {
			continue
		}
		if best == nil || tieLess(g, *best) {
			chosen := g.Clone()
			best = &chosen
		}
	}
	return best
}
