package engine

import (
	"testing"

	"github.com/julianstephens/stride/internal/models"
)

func rankedIDs(entries []RankedGoal) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Goal.ID
	}
	return ids
}

func TestRank_DescendingByScore(t *testing.T) {
	entries := []RankedGoal{
		{Goal: models.Goal{ID: "low"}, Score: -500},
		{Goal: models.Goal{ID: "high"}, Score: 100},
		{Goal: models.Goal{ID: "mid"}, Score: 0},
	}

	got := rankedIDs(Rank(entries))
	want := []string{"high", "mid", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRank_TiesBreakByOrderThenLabel(t *testing.T) {
	one, two := 1, 2
	entries := []RankedGoal{
		{Goal: models.Goal{ID: "c", Title: "Write", Order: &two}, Score: 0},
		{Goal: models.Goal{ID: "b", Title: "Read", Order: &two}, Score: 0},
		{Goal: models.Goal{ID: "a", Title: "Zzz", Order: &one}, Score: 0},
	}

	got := rankedIDs(Rank(entries))
	// Order 1 first despite the later label; then label compare.
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRank_LabelCompareIsCaseRespecting(t *testing.T) {
	// Byte-wise compare: uppercase sorts before lowercase.
	entries := []RankedGoal{
		{Goal: models.Goal{ID: "lower", Title: "apple"}, Score: 0},
		{Goal: models.Goal{ID: "upper", Title: "Banana"}, Score: 0},
	}

	got := rankedIDs(Rank(entries))
	if got[0] != "upper" || got[1] != "lower" {
		t.Errorf("expected [upper lower], got %v", got)
	}
}

func TestRank_EqualEntriesKeepInputOrder(t *testing.T) {
	entries := []RankedGoal{
		{Goal: models.Goal{ID: "first", Title: "Same"}, Score: 0},
		{Goal: models.Goal{ID: "second", Title: "Same"}, Score: 0},
		{Goal: models.Goal{ID: "third", Title: "Same"}, Score: 0},
	}

	got := rankedIDs(Rank(entries))
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stable sort should keep input order %v, got %v", want, got)
		}
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	entries := []RankedGoal{
		{Goal: models.Goal{ID: "low"}, Score: -1},
		{Goal: models.Goal{ID: "high"}, Score: 1},
	}

	Rank(entries)

	if entries[0].Goal.ID != "low" || entries[1].Goal.ID != "high" {
		t.Errorf("input slice was reordered: %v", rankedIDs(entries))
	}
}
