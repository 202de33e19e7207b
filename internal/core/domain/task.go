package domain

import (
	"errors"
	"time"
)

// TaskStatus represents the board column a task lives in.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrEmptyTitle = errors.New("title must not be empty")
var ErrInvalidStatus = errors.New("invalid task status")
var ErrEmptyPatch = errors.New("no fields to update")

// IsValid reports whether s is one of the three enumerated statuses.
// Transitions between valid statuses are unrestricted.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one user. Every read and mutation
// is scoped by UserID; a task owned by someone else is indistinguishable from
// one that does not exist.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
