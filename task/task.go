// Package task implements an in-memory todo store.
//
// The Store is the single authority for task state: it assigns sequential
// identifiers that are never reused, enforces the textual field limits, and
// is the only place that mutates Task records. Everything is volatile; a
// store lives exactly as long as the process that created it.
//
// The public API mirrors the command surface:
//   - Add, Update, Delete for the task lifecycle
//   - Complete, Incomplete for the completion state
//   - Get, List for querying
package task

import "time"

// Status represents the completion state of a task.
type Status string

const (
	// StatusIncomplete indicates the task has not been finished yet.
	StatusIncomplete Status = "incomplete"

	// StatusComplete indicates the task has been finished.
	StatusComplete Status = "complete"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusIncomplete, StatusComplete}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Checkbox returns the visual indicator for the status.
func (s Status) Checkbox() string {
	if s == StatusComplete {
		return "[*]"
	}
	return "[ ]"
}

// Field limits, counted in characters after trimming surrounding whitespace.
const (
	// MaxTitleLength is the maximum title length.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum description length.
	MaxDescriptionLength = 500
)

// Task represents a single todo item.
type Task struct {
	// ID is a positive sequential identifier, unique for the lifetime of
	// the store and never reused after deletion.
	ID int `json:"id"`

	// Title is the short summary of the task (1-100 chars).
	Title string `json:"title"`

	// Description provides additional context (0-500 chars, optional).
	Description string `json:"description,omitempty"`

	// Status is the completion state.
	Status Status `json:"status"`

	// CreatedAt is when the task was created. Updates never touch it.
	CreatedAt time.Time `json:"created_at"`
}

// HasDescription returns true when the task carries a non-empty description.
func (t Task) HasDescription() bool {
	return t.Description != ""
}
