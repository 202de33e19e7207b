package handler

import (
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createTaskRequest, ownerID string) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
	}
}

func toPatch(req updateTaskRequest) ports.TaskPatch {
	patch := ports.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

// --- Service result → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toBoardResponse(b *ports.TaskBoard) taskBoardResponse {
	return taskBoardResponse{
		ToDo:       toTaskResponses(b.ToDo),
		InProgress: toTaskResponses(b.InProgress),
		Done:       toTaskResponses(b.Done),
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}
