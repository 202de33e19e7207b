package ports

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task on behalf of an
// authenticated owner.
type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	Status      domain.TaskStatus // empty = default "To Do"
}

// TaskBoard is the grouped view of a user's tasks. All three buckets are
// always present, each sorted by creation time ascending.
type TaskBoard struct {
	ToDo       []*domain.Task `json:"To Do"`
	InProgress []*domain.Task `json:"In Progress"`
	Done       []*domain.Task `json:"Done"`
}

// TaskService defines the owner-scoped use cases over tasks.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	ListBoard(ctx context.Context, ownerID string) (*TaskBoard, error)
	Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
