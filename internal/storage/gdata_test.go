package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestGData(t *testing.T) *GDataStore {
	t.Helper()
	appName := fmt.Sprintf("tui_jumper_test_%d", time.Now().UnixNano())
	store, err := OpenGData(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

func TestGDataSubmitKeepsMaximum(t *testing.T) {
	store := openTestGData(t)

	if high, err := store.HighScore("jumper"); err != nil || high != 0 {
		t.Fatalf("HighScore() = %d, %v; expected 0 for an empty store", high, err)
	}

	steps := []struct {
		score      int
		wantRecord bool
		wantHigh   int
	}{
		{120, true, 120},
		{80, false, 120},
		{121, true, 121},
	}
	for _, st := range steps {
		improved, err := store.Submit("jumper", st.score)
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", st.score, err)
		}
		if improved != st.wantRecord {
			t.Errorf("Submit(%d) = %v, expected %v", st.score, improved, st.wantRecord)
		}
		if high, _ := store.HighScore("jumper"); high != st.wantHigh {
			t.Errorf("after Submit(%d) high = %d, expected %d", st.score, high, st.wantHigh)
		}
	}

	rec, err := store.Record("jumper")
	if err != nil || rec == nil {
		t.Fatalf("Record() = %v, %v", rec, err)
	}
	if rec.UpdatedAt.IsZero() {
		t.Error("record should carry its update time")
	}
}

func TestGDataReset(t *testing.T) {
	store := openTestGData(t)

	if err := store.Reset("jumper"); err != nil {
		t.Fatalf("Reset() on an empty store failed: %v", err)
	}

	store.Submit("jumper", 300)
	if err := store.Reset("jumper"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if high, _ := store.HighScore("jumper"); high != 0 {
		t.Errorf("high after reset = %d, expected 0", high)
	}
}
