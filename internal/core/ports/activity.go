package ports

import (
	"context"
	"time"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

// ActivityInput is the DTO handed from the task service to the activity
// pipeline.
type ActivityInput struct {
	TaskID    string
	OwnerID   string
	Action    string
	Timestamp time.Time
}

// ActivityService processes a single audit entry.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
}

// ActivityRepository persists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.Activity) error
}
