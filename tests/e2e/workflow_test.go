package e2e

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/stride/internal/cli"
	"github.com/julianstephens/stride/internal/engine"
	"github.com/julianstephens/stride/internal/models"
	"github.com/julianstephens/stride/internal/storage"
)

func newTestContext(t *testing.T) *cli.Context {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "stride.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() { store.Close() })

	return &cli.Context{
		Store:  store,
		Engine: engine.New(),
	}
}

// TestEndToEndWorkflow walks the primary user journey: init, add goals,
// start one, finish it, and watch the ranking move on.
func TestEndToEndWorkflow(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&cli.InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	addCmds := []*cli.GoalAddCmd{
		{Title: "Learn piano", Days: "mon,wed", At: "19:00", Impact: 7},
		{Title: "Run a 10k", Deadline: time.Now().AddDate(0, 0, 10).Format("2006-01-02"), Impact: 5},
		{Title: "Write a novel", Order: intPtr(1)},
	}
	for _, cmd := range addCmds {
		if err := cmd.Validate(); err != nil {
			t.Fatalf("goal add %q validation failed: %v", cmd.Title, err)
		}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("goal add %q failed: %v", cmd.Title, err)
		}
	}

	goals, err := ctx.Store.GetAllGoals()
	if err != nil {
		t.Fatalf("failed to list goals: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}

	// Manual order should win the ranking before anything is started
	state, err := ctx.Store.GetState()
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	result := ctx.Engine.Compute(state, time.Now(), 3)
	if result.ActiveGoal != nil {
		t.Errorf("expected no active goal yet, got %s", result.ActiveGoal.DisplayLabel())
	}
	if len(result.RankedQueued) != 3 {
		t.Fatalf("expected 3 ranked goals, got %d", len(result.RankedQueued))
	}
	if got := result.RankedQueued[0].Goal.Title; got != "Write a novel" {
		t.Errorf("expected the manually ordered goal first, got %q", got)
	}

	// Start the top goal
	topID := result.RankedQueued[0].Goal.ID
	if err := (&cli.StartCmd{ID: topID}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	state, _ = ctx.Store.GetState()
	result = ctx.Engine.Compute(state, time.Now(), 3)
	if result.ActiveGoal == nil || result.ActiveGoal.ID != topID {
		t.Fatalf("expected %s to be active after start", topID)
	}
	if len(result.RankedQueued) != 2 {
		t.Errorf("expected 2 queued goals while one is active, got %d", len(result.RankedQueued))
	}

	// Finish it; the active slot empties and the goal leaves the queue
	if err := (&cli.GoalDoneCmd{ID: topID}).Run(ctx); err != nil {
		t.Fatalf("done failed: %v", err)
	}

	state, _ = ctx.Store.GetState()
	if state.UI.ActiveGoalID != "" {
		t.Errorf("expected active hint cleared after done, got %q", state.UI.ActiveGoalID)
	}
	result = ctx.Engine.Compute(state, time.Now(), 3)
	if result.ActiveGoal != nil {
		t.Errorf("expected no active goal after done, got %s", result.ActiveGoal.DisplayLabel())
	}
	for _, entry := range result.RankedQueued {
		if entry.Goal.ID == topID {
			t.Errorf("finished goal %s still in the queue", topID)
		}
	}

	// The scheduled goal has a concrete next occurrence and outranks the
	// unscheduled one, whose missing occurrence counts heavily against it
	if len(result.RankedQueued) == 2 {
		if got := result.RankedQueued[0].Goal.Title; got != "Learn piano" {
			t.Errorf("expected the scheduled goal first, got %q", got)
		}
	}
}

// TestWorkflowDeleteAndRestore covers the soft-delete round trip through
// the command layer.
func TestWorkflowDeleteAndRestore(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&cli.InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	add := &cli.GoalAddCmd{Title: "Learn piano"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	goals, _ := ctx.Store.GetAllGoals()
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	id := goals[0].ID

	if err := (&cli.GoalDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	goals, _ = ctx.Store.GetAllGoals()
	if len(goals) != 0 {
		t.Errorf("expected no live goals after delete, got %d", len(goals))
	}

	if err := (&cli.GoalRestoreCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	goals, _ = ctx.Store.GetAllGoals()
	if len(goals) != 1 {
		t.Errorf("expected the goal back after restore, got %d", len(goals))
	}
}

// TestWorkflowStatusNormalization makes sure legacy statuses flow
// through the whole stack without breaking ranking.
func TestWorkflowStatusNormalization(t *testing.T) {
	ctx := newTestContext(t)

	if err := (&cli.InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	goal := models.Goal{
		ID:        "legacy-1",
		Title:     "Old tracker import",
		Status:    "abandoned",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ctx.Store.AddGoal(goal); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}

	state, _ := ctx.Store.GetState()
	result := ctx.Engine.Compute(state, time.Now(), 3)
	for _, entry := range result.RankedQueued {
		if entry.Goal.ID == "legacy-1" {
			t.Errorf("abandoned goal should be excluded from the queue")
		}
	}
}

func intPtr(v int) *int { return &v }
