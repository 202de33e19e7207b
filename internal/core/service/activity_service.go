package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists audit entries
// to the activity repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record validates and persists a single audit entry.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	switch in.Action {
	case domain.ActionCreated, domain.ActionUpdated, domain.ActionDeleted:
	default:
		return fmt.Errorf("record activity: %w (%q)", domain.ErrInvalidAction, in.Action)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	entry := &domain.Activity{
		TaskID:    in.TaskID,
		UserID:    in.OwnerID,
		Action:    in.Action,
		Timestamp: ts,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivitiesRecordedTotal.WithLabelValues(in.Action).Inc()
	s.log.Debug().
		Str("task_id", in.TaskID).
		Str("owner_id", in.OwnerID).
		Str("action", in.Action).
		Msg("activity recorded")

	return nil
}
