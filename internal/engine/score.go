package engine

import (
	"math"
	"time"

	"github.com/julianstephens/stride/internal/constants"
	"github.com/julianstephens/stride/internal/models"
)

// Score assigns a comparable priority score to a goal at the given instant.
// Active goals score +Inf and done/invalid goals -Inf, so they always
// dominate or are excluded from the queued ranking. Queued goals get a
// weighted sum of order, schedule recency, deadline urgency, why-link, and
// impact; the weights live in the constants package and must not drift.
func Score(g models.Goal, now time.Time) float64 {
	switch models.NormalizeStatus(g.Status) {
	case models.StatusActive:
		return math.Inf(1)
	case models.StatusDone, models.StatusInvalid:
		return math.Inf(-1)
	}
	return queuedScore(g, now)
}

func queuedScore(g models.Goal, now time.Time) float64 {
	score := -float64(orderOrDefault(g)) * constants.OrderWeight
	score -= float64(minutesUntilNext(g.Schedule, now))
	score += deadlineUrgency(DaysUntilDeadline(g.Deadline, now)) * constants.DeadlineWeight
	score += clamp(g.WhyLink, 0, constants.WhyLinkMax) * constants.WhyLinkWeight
	score += clamp(g.Impact, 0, constants.ImpactMax) * constants.ImpactWeight
	return score
}

// minutesUntilNext is the rounded minute count until the next scheduled
// occurrence, never negative. Goals without a resolvable occurrence get
// the MissingOccurrenceMinutes sentinel so they rank behind scheduled ones
// on this term.
func minutesUntilNext(sched *models.Schedule, now time.Time) int {
	next := NextOccurrence(sched, now)
	if next == nil {
		return constants.MissingOccurrenceMinutes
	}
	minutes := int(math.Round(float64(next.Sub(now).Milliseconds()) / 60_000))
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}

func orderOrDefault(g models.Goal) int {
	if g.Order == nil {
		return constants.DefaultOrder
	}
	return *g.Order
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
