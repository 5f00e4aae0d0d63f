package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is a single tracked interval of work.
type Entry struct {
	ID          uuid.UUID  `json:"id"`
	Project     *string    `json:"project"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"` // nil while the entry is running
}

// NewEntry creates a new running entry starting now
func NewEntry(project, description *string, tags []string) *Entry {
	if tags == nil {
		tags = []string{}
	}
	return &Entry{
		ID:          uuid.New(),
		Project:     project,
		Description: description,
		Tags:        tags,
		StartTime:   time.Now(),
	}
}

// IsRunning returns true if the entry has no end time
func (e *Entry) IsRunning() bool {
	return e.EndTime == nil
}

// Stop sets the end time if the entry is still running. It reports whether
// the entry was actually stopped; stopping a closed entry never overwrites
// the recorded end time.
func (e *Entry) Stop(endTime time.Time) bool {
	if e.EndTime != nil {
		return false
	}
	e.EndTime = &endTime
	return true
}

// Duration returns the duration of the entry
func (e *Entry) Duration() time.Duration {
	if e.EndTime == nil {
		return time.Since(e.StartTime)
	}
	return e.EndTime.Sub(e.StartTime)
}

// ProjectLabel returns the project, or "" if none was set
func (e *Entry) ProjectLabel() string {
	if e.Project == nil {
		return ""
	}
	return *e.Project
}

// DescriptionLabel returns the description, or "" if none was set
func (e *Entry) DescriptionLabel() string {
	if e.Description == nil {
		return ""
	}
	return *e.Description
}

// String renders the entry metadata as "project: description [tags]".
// Unset fields render as empty strings.
func (e *Entry) String() string {
	return fmt.Sprintf("%s: %s %v", e.ProjectLabel(), e.DescriptionLabel(), e.Tags)
}
