package models

// Status is the canonical lifecycle state of a goal. Stored status values
// are free-form strings; NormalizeStatus maps them onto this closed set.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusActive  Status = "active"
	StatusDone    Status = "done"
	StatusInvalid Status = "invalid"
)

// statusAbandoned is a legacy stored value from before goals could be
// marked invalid. It normalizes to StatusInvalid.
const statusAbandoned = "abandoned"

// NormalizeStatus maps an arbitrary stored status onto the canonical set.
// Unknown or empty values fall back to queued so that a goal with a
// corrupted status still shows up somewhere instead of disappearing.
// The function is total and idempotent.
func NormalizeStatus(raw string) Status {
	switch raw {
	case string(StatusQueued), string(StatusActive), string(StatusDone), string(StatusInvalid):
		return Status(raw)
	case statusAbandoned:
		return StatusInvalid
	default:
		return StatusQueued
	}
}

// Terminal reports whether the status excludes a goal from ranking and
// from active-goal resolution.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusInvalid
}

// Schedule is a weekly recurrence: which weekdays a goal is planned on and
// at which times of day.
type Schedule struct {
	// DaysOfWeek uses ISO numbering: 1=Monday .. 7=Sunday.
	DaysOfWeek []int `json:"days_of_week,omitempty"`
	// TimeSlots are "HH:MM" (or "H:MM") local times of day.
	TimeSlots []string `json:"time_slots,omitempty"`
}

// Goal represents a trackable objective.
type Goal struct {
	ID       string    `json:"id"`
	Title    string    `json:"title,omitempty"`
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Status   string    `json:"status,omitempty"`
	Order    *int      `json:"order,omitempty"` // lower = higher priority
	Schedule *Schedule `json:"schedule,omitempty"`
	Deadline string    `json:"deadline,omitempty"` // YYYY-MM-DD, end of day
	WhyLink  float64   `json:"why_link,omitempty"` // 0..1
	Impact   float64   `json:"impact,omitempty"`   // 0..10
	// CreatedAt and DeletedAt are RFC3339 timestamps. DeletedAt marks a
	// soft delete; deleted goals never reach the engine.
	CreatedAt string  `json:"created_at,omitempty"`
	DeletedAt *string `json:"deleted_at,omitempty"`
}

// DisplayLabel resolves the human-readable label for a goal: the first
// non-empty of Title, Name, Label, ID.
func (g Goal) DisplayLabel() string {
	for _, s := range []string{g.Title, g.Name, g.Label, g.ID} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Clone returns an independent deep copy of the goal. The priorities
// engine hands out clones so callers can never alias the stored snapshot.
func (g Goal) Clone() Goal {
	c := g
	if g.Schedule != nil {
		sched := Schedule{}
		if g.Schedule.DaysOfWeek != nil {
			sched.DaysOfWeek = append([]int(nil), g.Schedule.DaysOfWeek...)
		}
		if g.Schedule.TimeSlots != nil {
			sched.TimeSlots = append([]string(nil), g.Schedule.TimeSlots...)
		}
		c.Schedule = &sched
	}
	if g.Order != nil {
		order := *g.Order
		c.Order = &order
	}
	if g.DeletedAt != nil {
		deleted := *g.DeletedAt
		c.DeletedAt = &deleted
	}
	return c
}

// UIState carries presentation-level hints persisted alongside the goals.
type UIState struct {
	// ActiveGoalID is a weak reference: it may be empty or point at a
	// goal that no longer exists. It is a lookup key, not ownership.
	ActiveGoalID string `json:"active_goal_id,omitempty"`
}

// State is the read-only snapshot the priorities engine operates on.
type State struct {
	Goals []Goal  `json:"goals"`
	UI    UIState `json:"ui"`
}
