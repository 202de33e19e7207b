package service

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// BoardCache abstracts the per-user board cache (Redis).
type BoardCache interface {
	// Get returns the cached board payload for ownerID; ok is false on a miss.
	Get(ctx context.Context, ownerID string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, ownerID string, payload []byte) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ActivityQueue accepts audit entries for asynchronous processing.
type ActivityQueue interface {
	Enqueue(input ports.ActivityInput)
}

// TaskService implements owner-scoped task CRUD and the grouped board view.
// Cache and queue are optional; a nil value disables the concern.
type TaskService struct {
	repo   ports.TaskRepository
	cache  BoardCache
	queue  ActivityQueue
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, cache BoardCache, queue ActivityQueue, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, cache: cache, queue: queue, logger: logger}
}

// Create persists a new task for ownerID. An empty status defaults to "To Do".
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.OwnerID == "" {
		return nil, domain.ErrMissingIdentity
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	status := input.Status
	if status == "" {
		status = domain.StatusToDo
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create task")
		return nil, err
	}

	s.invalidateBoard(ctx, input.OwnerID)
	s.publishActivity(created.ID, input.OwnerID, domain.ActionCreated)
	metrics.TasksCreatedTotal.WithLabelValues(string(status)).Inc()

	s.logger.Info().Str("task_id", created.ID).Str("owner_id", input.OwnerID).Msg("task created")
	return created, nil
}

// ListBoard returns ownerID's tasks partitioned into the three status buckets.
// The board is served from cache when present; a cache fault degrades to a
// direct read.
func (s *TaskService) ListBoard(ctx context.Context, ownerID string) (*ports.TaskBoard, error) {
	if ownerID == "" {
		return nil, domain.ErrMissingIdentity
	}

	if s.cache != nil {
		payload, ok, err := s.cache.Get(ctx, ownerID)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("board cache read failed")
		case ok:
			var board ports.TaskBoard
			if err := json.Unmarshal(payload, &board); err == nil {
				metrics.BoardCacheTotal.WithLabelValues("hit").Inc()
				return &board, nil
			}
			s.logger.Warn().Str("owner_id", ownerID).Msg("board cache payload corrupt, reloading")
		}
		metrics.BoardCacheTotal.WithLabelValues("miss").Inc()
	}

	tasks, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	board := groupTasks(tasks)

	if s.cache != nil {
		if payload, err := json.Marshal(board); err == nil {
			if err := s.cache.Set(ctx, ownerID, payload); err != nil {
				s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("board cache write failed")
			}
		}
	}

	return board, nil
}

// Get fetches a single task owned by ownerID. A task owned by someone else
// behaves exactly like a missing one.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	if ownerID == "" {
		return nil, domain.ErrMissingIdentity
	}
	return s.repo.FindByID(ctx, taskID, ownerID)
}

// Update applies a partial patch to a task owned by ownerID and returns the
// updated record. Ownership is enforced at the storage query.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, patch ports.TaskPatch) (*domain.Task, error) {
	if ownerID == "" {
		return nil, domain.ErrMissingIdentity
	}
	if patch.Title == nil && patch.Description == nil && patch.Status == nil {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, taskID, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx, ownerID)
	s.publishActivity(taskID, ownerID, domain.ActionUpdated)

	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task updated")
	return updated, nil
}

// Delete removes a task owned by ownerID.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if ownerID == "" {
		return domain.ErrMissingIdentity
	}

	if err := s.repo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}

	s.invalidateBoard(ctx, ownerID)
	s.publishActivity(taskID, ownerID, domain.ActionDeleted)

	s.logger.Info().Str("task_id", taskID).Str("owner_id", ownerID).Msg("task deleted")
	return nil
}

func (s *TaskService) invalidateBoard(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Warn().Err(err).Str("owner_id", ownerID).Msg("board cache invalidation failed")
	}
}

func (s *TaskService) publishActivity(taskID, ownerID, action string) {
	if s.queue == nil {
		return
	}
	s.queue.Enqueue(ports.ActivityInput{
		TaskID:    taskID,
		OwnerID:   ownerID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

// groupTasks partitions tasks into the three fixed buckets, each sorted by
// creation time ascending with id as tie-breaker.
func groupTasks(tasks []*domain.Task) *ports.TaskBoard {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	board := &ports.TaskBoard{
		ToDo:       make([]*domain.Task, 0),
		InProgress: make([]*domain.Task, 0),
		Done:       make([]*domain.Task, 0),
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusInProgress:
			board.InProgress = append(board.InProgress, t)
		case domain.StatusDone:
			board.Done = append(board.Done, t)
		default:
			board.ToDo = append(board.ToDo, t)
		}
	}
	return board
}
