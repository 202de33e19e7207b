package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// TaskPatch carries the optional fields of a partial update. Nil means
// "leave unchanged".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks. Every operation
// that addresses a single task filters by owner at the query itself, so a
// wrong-owner access surfaces as domain.ErrTaskNotFound.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	FindByID(ctx context.Context, taskID, ownerID string) (*domain.Task, error)
	// Update applies patch and returns the updated document.
	Update(ctx context.Context, taskID, ownerID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, taskID, ownerID string) error
}
