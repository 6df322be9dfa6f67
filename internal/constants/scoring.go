package constants

const (
	// Priority scoring weights. These are load-bearing: rankings produced
	// by older versions must be reproducible, so a change here is a
	// behavior change, not a tuning knob.
	// - OrderWeight dominates under typical spacing: one order step (1000)
	//   outweighs the full impact range (300) and the full why-link range
	//   (500) combined.
	// - The recency and deadline terms are effectively unbounded relative
	//   to discrete order steps, so a very near occurrence or deadline can
	//   override order.
	OrderWeight    = 1000.0
	DeadlineWeight = 50.0
	WhyLinkWeight  = 500.0
	ImpactWeight   = 30.0

	// DefaultOrder is the sentinel for goals without an explicit order.
	// It sorts after any realistic explicit order.
	DefaultOrder = 9999

	// MissingOccurrenceMinutes stands in for "no upcoming occurrence".
	// It must exceed any minute count reachable within the scan horizon
	// (15 days = 21600 minutes) so unscheduled goals never outrank
	// scheduled ones on the recency term.
	MissingOccurrenceMinutes = 999999

	// OccurrenceHorizonDays bounds the next-occurrence scan. Any weekly
	// schedule with at least one valid (day, slot) pair resolves within
	// two weeks; day offsets 0..OccurrenceHorizonDays are examined.
	OccurrenceHorizonDays = 14

	// Deadline urgency is clamped to ±UrgencyClampDays days. Beyond two
	// months out (or overdue) the deadline term saturates.
	UrgencyClampDays = 60
)

const (
	// WhyLinkMax and ImpactMax bound the corresponding goal attributes
	// before weighting. Values outside the range are clamped, not
	// rejected.
	WhyLinkMax = 1.0
	ImpactMax  = 10.0
)
