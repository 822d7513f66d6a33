package storage

import (
	"path/filepath"
	"testing"
)

func TestTrackerWithoutStore(t *testing.T) {
	tr := NewTracker(nil, "jumper", nil)

	tests := []struct {
		score      int
		wantRecord bool
		wantBest   int
	}{
		{0, false, 0},
		{150, true, 150},
		{90, false, 150},
		{150, true, 150},
		{400, true, 400},
	}
	for _, tt := range tests {
		tr.Submit(tt.score)
		if tr.NewRecord() != tt.wantRecord || tr.Best() != tt.wantBest {
			t.Errorf("Submit(%d): record=%v best=%d, expected %v %d",
				tt.score, tr.NewRecord(), tr.Best(), tt.wantRecord, tt.wantBest)
		}
	}
}

func TestTrackerPersists(t *testing.T) {
	store := openTestStore(t)
	store.Submit("jumper", 500)

	tr := NewTracker(store, "jumper", nil)
	if tr.Best() != 500 {
		t.Fatalf("Best() = %d, expected the stored 500", tr.Best())
	}

	tr.Submit(200)
	tr.Submit(750)
	if high, _ := store.HighScore("jumper"); high != 750 {
		t.Errorf("stored high = %d, expected 750", high)
	}
}

func TestTrackerSurvivesClosedStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	tr := NewTracker(store, "jumper", nil)
	tr.Submit(300)
	if tr.Best() != 300 || !tr.NewRecord() {
		t.Errorf("tracker should keep the record in memory, best = %d", tr.Best())
	}
}
