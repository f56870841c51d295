package task

import (
	"strings"
	"sync"
	"time"
)

// Store holds all tasks in memory and owns every invariant: sequential ID
// assignment, field validation, and completion-state transitions.
//
// A mutex guards the maps so the store can be embedded in a concurrent host
// (the bubbletea UI runs its own goroutine), but the contract is otherwise
// synchronous: every operation either completes fully or leaves the store
// unchanged.
type Store struct {
	mu     sync.Mutex
	tasks  map[int]*Task
	order  []int
	nextID int
}

// NewStore returns an empty store with the ID counter at 1.
func NewStore() *Store {
	return &Store{
		tasks:  make(map[int]*Task),
		nextID: 1,
	}
}

// Add validates the title and optional description, then creates a task with
// the next sequential ID, incomplete status, and the current time. The ID
// counter advances exactly once per successful add.
func (s *Store) Add(title, description string) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description != "" {
		if err := ValidateDescription(description); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{
		ID:          s.nextID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      StatusIncomplete,
		CreatedAt:   time.Now(),
	}
	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	s.nextID++

	copied := *t
	return &copied, nil
}

// Get retrieves a task by ID. The returned value is a copy; mutation must go
// through store operations.
func (s *Store) Get(id int) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFoundError(id)
	}
	copied := *t
	return &copied, nil
}

// List returns all tasks in creation order.
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tasks[id])
	}
	return out
}

// Len returns the number of tasks currently in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// UpdateOptions carries the fields an update changes. Nil pointers leave the
// corresponding field untouched; at least one field must be set.
type UpdateOptions struct {
	Title       *string
	Description *string
}

// Update changes the provided fields of a task. Status and CreatedAt are
// never touched. Validation runs before any mutation, so a failed update
// leaves the task exactly as it was.
func (s *Store) Update(id int, opts UpdateOptions) (*Task, error) {
	if opts.Title == nil && opts.Description == nil {
		return nil, ErrNoFields
	}
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Description != nil {
		if err := ValidateDescription(*opts.Description); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFoundError(id)
	}
	if opts.Title != nil {
		t.Title = strings.TrimSpace(*opts.Title)
	}
	if opts.Description != nil {
		t.Description = strings.TrimSpace(*opts.Description)
	}

	copied := *t
	return &copied, nil
}

// Delete permanently removes a task. The ID counter is never adjusted, so
// deleted IDs leave gaps that are never filled.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return notFoundError(id)
	}
	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Complete marks a task complete. Re-applying has no further effect.
func (s *Store) Complete(id int) (*Task, error) {
	return s.setStatus(id, StatusComplete)
}

// Incomplete marks a task incomplete. Re-applying has no further effect.
func (s *Store) Incomplete(id int) (*Task, error) {
	return s.setStatus(id, StatusIncomplete)
}

func (s *Store) setStatus(id int, status Status) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, notFoundError(id)
	}
	t.Status = status

	copied := *t
	return &copied, nil
}
