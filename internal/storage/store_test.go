package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plof27/atomichron/internal/domain"
)

func strptr(s string) *string { return &s }

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "entries.json"))
}

func TestLoadMissingFileReturnsEmptyList(t *testing.T) {
	s := tempStore(t)

	list, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if list.Entries == nil || len(list.Entries) != 0 {
		t.Errorf("expected a fresh empty list, got %v", list.Entries)
	}
	if list.CurrentID != nil {
		t.Error("fresh list should have no current entry")
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := tempStore(t)

	list := domain.NewEntryList()

	closed := domain.NewEntry(strptr("acme"), strptr("design review"), []string{"urgent", "client"})
	closed.Stop(time.Now())
	list.Entries[closed.ID] = closed

	// Running entry with every optional absent and no tags.
	running := domain.NewEntry(nil, nil, nil)
	list.Entries[running.ID] = running
	id := running.ID
	list.CurrentID = &id

	if err := s.Save(ctx, list); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(loaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded.Entries))
	}
	if loaded.CurrentID == nil || *loaded.CurrentID != running.ID {
		t.Fatalf("current pointer did not round-trip, got %v", loaded.CurrentID)
	}

	gotClosed, ok := loaded.Entries[closed.ID]
	if !ok {
		t.Fatal("closed entry missing after round-trip")
	}
	if gotClosed.ProjectLabel() != "acme" || gotClosed.DescriptionLabel() != "design review" {
		t.Errorf("metadata did not round-trip: %v", gotClosed)
	}
	if len(gotClosed.Tags) != 2 || gotClosed.Tags[0] != "urgent" || gotClosed.Tags[1] != "client" {
		t.Errorf("tags did not round-trip in order: %v", gotClosed.Tags)
	}
	if !gotClosed.StartTime.Equal(closed.StartTime) {
		t.Errorf("start time drifted: %v vs %v", gotClosed.StartTime, closed.StartTime)
	}
	if gotClosed.EndTime == nil || !gotClosed.EndTime.Equal(*closed.EndTime) {
		t.Errorf("end time drifted: %v vs %v", gotClosed.EndTime, closed.EndTime)
	}

	gotRunning, ok := loaded.Entries[running.ID]
	if !ok {
		t.Fatal("running entry missing after round-trip")
	}
	if gotRunning.Project != nil || gotRunning.Description != nil || gotRunning.EndTime != nil {
		t.Errorf("absent optionals should stay absent: %v", gotRunning)
	}
	if gotRunning.Tags == nil || len(gotRunning.Tags) != 0 {
		t.Errorf("empty tags should stay an empty slice: %v", gotRunning.Tags)
	}
}

func TestLoadCorruptFileIsDecodeError(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load(context.Background())
	if err == nil {
		t.Fatal("expected an error for a corrupt data file")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
	if decodeErr.Path != s.Path() {
		t.Errorf("decode error should name the file, got %q", decodeErr.Path)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "nested", "deeper", "entries.json"))

	if err := s.Save(context.Background(), domain.NewEntryList()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Fatalf("data file not written: %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(context.Background(), domain.NewEntryList()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind after save: %v", err)
	}
}

func TestLockExcludesSecondHolder(t *testing.T) {
	lock := NewLock(filepath.Join(t.TempDir(), "entries.json.lock"))

	if err := lock.Acquire(); err != nil {
		t.Fatal(err)
	}
	if err := lock.Acquire(); err == nil {
		t.Fatal("second acquire should fail while the lock is held")
	}
	if err := lock.Release(); err != nil {
		t.Fatal(err)
	}
	if err := lock.Acquire(); err != nil {
		t.Fatalf("acquire after release should succeed: %v", err)
	}
	_ = lock.Release()
}

func TestLockReclaimsStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json.lock")
	if err := os.WriteFile(path, []byte("12345\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * staleAfter)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}

	lock := NewLock(path)
	if err := lock.Acquire(); err != nil {
		t.Fatalf("stale lockfile should be reclaimed: %v", err)
	}
	_ = lock.Release()
}
