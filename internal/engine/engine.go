package engine

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

// Engine is the priorities facade: it turns a state snapshot into the
// resolved active goal plus the ranked queue. It holds no state between
// calls; Compute is a pure function of its arguments.
type Engine struct {
	// Debug, when non-nil, receives a notice if more than one goal is
	// marked active. Wired up only for development runs; it never affects
	// the computed result.
	Debug io.Writer
}

func New() *Engine {
	return &Engine{}
}

// Meta carries diagnostics about the snapshot the result was derived from.
type Meta struct {
	HasMultipleActive bool `json:"has_multiple_active"`
	// WarningMultiActive mirrors HasMultipleActive; older callers keyed
	// off this name.
	WarningMultiActive bool     `json:"warning_multi_active"`
	ActiveIDs          []string `json:"active_ids"`
	UIActiveID         string   `json:"ui_active_id"`
}

// Result is the assembled output of one Compute call. Everything in it is
// derived data owned by the caller; nothing aliases the input snapshot.
type Result struct {
	ActiveGoal   *models.Goal `json:"active_goal"`
	NextGoals    []RankedGoal `json:"next_goals"`
	RankedQueued []RankedGoal `json:"ranked_queued"`
	Meta         Meta         `json:"meta"`
}

// Compute resolves the active goal and ranks the queued goals of the
// snapshot as of the given instant. NextGoals is the first topN entries of
// RankedQueued; topN values below zero are treated as zero. Goals whose
// status normalizes to done or invalid are excluded from the ranking.
func (e *Engine) Compute(state models.State, now time.Time, topN int) Result {
	normalized := make([]models.Goal, 0, len(state.Goals))
	for _, g := range state.Goals {
		c := g.Clone()
		c.Status = string(models.NormalizeStatus(g.Status))
		normalized = append(normalized, c)
	}

	var activeIDs []string
	for _, g := range normalized {
		if models.Status(g.Status) == models.StatusActive {
			activeIDs = append(activeIDs, g.ID)
		}
	}
	multiActive := len(activeIDs) > 1
	if multiActive && e.Debug != nil {
		fmt.Fprintf(e.Debug, "stride: %d goals are marked active: %s\n",
			len(activeIDs), strings.Join(activeIDs, ", "))
	}

	var queued []RankedGoal
	for _, g := range normalized {
		if models.Status(g.Status) != models.StatusQueued {
			continue
		}
		queued = append(queued, RankedGoal{
			Goal:              g,
			Score:             Score(g, now),
			NextPlannedAt:     NextOccurrence(g.Schedule, now),
			DaysUntilDeadline: DaysUntilDeadline(g.Deadline, now),
		})
	}
	ranked := Rank(queued)

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}

	return Result{
		ActiveGoal:   SelectActive(normalized, state.UI.ActiveGoalID),
		NextGoals:    append([]RankedGoal(nil), ranked[:topN]...),
		RankedQueued: ranked,
		Meta: Meta{
			HasMultipleActive:  multiActive,
			WarningMultiActive: multiActive,
			ActiveIDs:          activeIDs,
			UIActiveID:         state.UI.ActiveGoalID,
		},
	}
}
