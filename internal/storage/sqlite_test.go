package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jumper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	rec, err := store.Record("jumper")
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected no record, got %+v", rec)
	}
}

func TestStoreSubmitKeepsMaximum(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score      int
		wantRecord bool
		wantHigh   int
	}{
		{0, false, 0},
		{100, true, 100},
		{50, false, 100},
		{100, false, 100},
		{300, true, 300},
		{200, false, 300},
	}

	for _, st := range steps {
		improved, err := store.Submit("jumper", st.score)
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", st.score, err)
		}
		if improved != st.wantRecord {
			t.Errorf("Submit(%d) = %v, expected %v", st.score, improved, st.wantRecord)
		}

		high, err := store.HighScore("jumper")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != st.wantHigh {
			t.Errorf("after Submit(%d) high = %d, expected %d", st.score, high, st.wantHigh)
		}
	}
}

func TestStoreGamesAreIndependent(t *testing.T) {
	store := openTestStore(t)

	store.Submit("jumper", 900)
	store.Submit("other", 50)

	if high, _ := store.HighScore("jumper"); high != 900 {
		t.Errorf("jumper high = %d, expected 900", high)
	}
	if high, _ := store.HighScore("other"); high != 50 {
		t.Errorf("other high = %d, expected 50", high)
	}
}

func TestStoreRecordTimestamp(t *testing.T) {
	store := openTestStore(t)

	before := time.Now().UTC().Add(-time.Minute)
	if _, err := store.Submit("jumper", 1234); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	rec, err := store.Record("jumper")
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec == nil || rec.Score != 1234 || rec.GameID != "jumper" {
		t.Fatalf("Record() = %+v, expected jumper/1234", rec)
	}
	if rec.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt = %v, expected a recent time", rec.UpdatedAt)
	}
}

func TestStoreReset(t *testing.T) {
	store := openTestStore(t)

	store.Submit("jumper", 500)
	store.Submit("other", 70)

	if err := store.Reset("jumper"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if high, _ := store.HighScore("jumper"); high != 0 {
		t.Errorf("high after reset = %d, expected 0", high)
	}
	if high, _ := store.HighScore("other"); high != 70 {
		t.Error("Reset should not touch other games")
	}

	// A lower score counts as a record again after a reset.
	if improved, _ := store.Submit("jumper", 10); !improved {
		t.Error("first score after reset should be a record")
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Submit("jumper", 4242)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("jumper"); high != 4242 {
		t.Errorf("high after reopen = %d, expected 4242", high)
	}
}

func TestOpenBackend(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	for _, kind := range []string{"", BackendSQLite} {
		s, err := OpenBackend(kind, dbPath)
		if err != nil {
			t.Fatalf("OpenBackend(%q) failed: %v", kind, err)
		}
		if _, ok := s.(*Store); !ok {
			t.Errorf("OpenBackend(%q) = %T, expected *Store", kind, s)
		}
		s.Close()
	}

	if _, err := OpenBackend("redis", dbPath); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.arcade/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("expandHome = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}

func TestOpenBackendFailureIsNil(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	// The parent "directory" is a regular file, so the store cannot open.
	s, err := OpenBackend(BackendSQLite, filepath.Join(file, "scores.db"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if s != nil {
		t.Errorf("failed open should return a nil interface, got %#v", s)
	}
}
