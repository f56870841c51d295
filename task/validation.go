package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyTitle is returned when a title is empty after trimming.
	ErrEmptyTitle = errors.New("Title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("Title exceeds %d characters", MaxTitleLength)

	// ErrDescriptionTooLong is returned when a description exceeds MaxDescriptionLength.
	ErrDescriptionTooLong = fmt.Errorf("Description exceeds %d characters", MaxDescriptionLength)

	// ErrNoFields is returned when an update provides neither a title nor
	// a description.
	ErrNoFields = errors.New("Provide new title or description")

	// ErrInvalidID is returned when a task ID fails to parse to a positive
	// integer at the command boundary.
	ErrInvalidID = errors.New("task ID must be a positive number")

	// ErrNotFound is returned when a task with the given ID doesn't exist.
	ErrNotFound = errors.New("not found")
)

// IsValidation reports whether err is a validation failure: malformed or
// out-of-range input rejected before any state changed.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrDescriptionTooLong) ||
		errors.Is(err, ErrNoFields) ||
		errors.Is(err, ErrInvalidID)
}

// IsNotFound reports whether err refers to a task ID absent from the store.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidateTitle checks a title against the length limits. The title is
// trimmed before checking, matching how the store persists it.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateDescription checks a description against the length limit.
// Empty descriptions are valid.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(strings.TrimSpace(description)) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// ParseID parses a decimal task ID as transmitted on the command boundary.
// Non-numeric or non-positive input is rejected without consulting a store.
func ParseID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, input)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidID, id)
	}
	return id, nil
}

func notFoundError(id int) error {
	return fmt.Errorf("task ID %d %w", id, ErrNotFound)
}
