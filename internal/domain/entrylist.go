package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrInconsistentState is returned when the current-entry pointer references
// an id that is not present in the list. This cannot happen through the API;
// it indicates corrupted persisted state and is not recoverable.
var ErrInconsistentState = errors.New("current entry is missing from the entry list")

// EntryList owns all entries plus the identity of the one currently running.
// At most one entry is ever running: starting a new entry closes the previous
// one first.
type EntryList struct {
	Entries map[uuid.UUID]*Entry `json:"entries"`

	// CurrentID is set when an entry is started and cleared when it is
	// stopped or discarded.
	CurrentID *uuid.UUID `json:"current_entry"`
}

// NewEntryList creates a new, empty list
func NewEntryList() *EntryList {
	return &EntryList{
		Entries: make(map[uuid.UUID]*Entry),
	}
}

// StopOverrides carries optional metadata updates applied when an entry is
// stopped. A nil Project or Description leaves that field untouched. Tags
// replaces the tag list wholesale, but only when non-empty: an empty slice
// means "leave the tags alone", not "clear them".
type StopOverrides struct {
	Project     *string
	Description *string
	Tags        []string
}

// Start creates a new running entry and makes it current. If another entry
// was running it is stopped first with no overrides; that entry is returned
// as stopped so callers can surface a notice.
func (l *EntryList) Start(project, description *string, tags []string) (started, stopped *Entry, err error) {
	stopped, _, err = l.StopCurrent(StopOverrides{})
	if err != nil {
		return nil, nil, err
	}

	entry := NewEntry(project, description, tags)
	l.Entries[entry.ID] = entry
	id := entry.ID
	l.CurrentID = &id

	return entry, stopped, nil
}

// StopCurrent stops the running entry, applies overrides, and leaves the list
// idle. Returns nil if nothing was running. The boolean reports that the
// entry's end time was already set and has been left untouched, so callers
// can surface a warning.
func (l *EntryList) StopCurrent(overrides StopOverrides) (*Entry, bool, error) {
	if l.CurrentID == nil {
		return nil, false, nil
	}

	entry, ok := l.Entries[*l.CurrentID]
	if !ok {
		return nil, false, fmt.Errorf("entry %s: %w", *l.CurrentID, ErrInconsistentState)
	}

	alreadyClosed := !entry.Stop(time.Now())
	l.CurrentID = nil

	if overrides.Project != nil {
		entry.Project = overrides.Project
	}
	if overrides.Description != nil {
		entry.Description = overrides.Description
	}
	if len(overrides.Tags) > 0 {
		entry.Tags = overrides.Tags
	}

	return entry, alreadyClosed, nil
}

// ClearCurrent discards the running entry entirely, removing it from the
// list. This lets you cancel an entry that was started by mistake. Returns
// nil if nothing was running.
func (l *EntryList) ClearCurrent() (*Entry, error) {
	if l.CurrentID == nil {
		return nil, nil
	}

	entry, ok := l.Entries[*l.CurrentID]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", *l.CurrentID, ErrInconsistentState)
	}

	delete(l.Entries, entry.ID)
	l.CurrentID = nil

	return entry, nil
}

// Current returns the running entry, or nil if the list is idle
func (l *EntryList) Current() (*Entry, error) {
	if l.CurrentID == nil {
		return nil, nil
	}

	entry, ok := l.Entries[*l.CurrentID]
	if !ok {
		return nil, fmt.Errorf("entry %s: %w", *l.CurrentID, ErrInconsistentState)
	}

	return entry, nil
}

// InOrder returns all entries sorted by start time. Ties break on entry id so
// the order is deterministic regardless of map iteration; descending is the
// exact reverse of ascending.
func (l *EntryList) InOrder(ascending bool) []*Entry {
	entries := make([]*Entry, 0, len(l.Entries))
	for _, e := range l.Entries {
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StartTime.Equal(entries[j].StartTime) {
			return entries[i].ID.String() < entries[j].ID.String()
		}
		return entries[i].StartTime.Before(entries[j].StartTime)
	})

	if !ascending {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	return entries
}
