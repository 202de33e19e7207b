package handler

import "time"

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
}

// updateTaskRequest is a partial patch: nil fields stay untouched.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
}

// taskResponse is the public task view. The id is the normalized document
// identifier; the raw store key never appears in a response.
type taskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// taskBoardResponse groups tasks under the literal status column names.
// All three keys are present even when empty.
type taskBoardResponse struct {
	ToDo       []taskResponse `json:"To Do"`
	InProgress []taskResponse `json:"In Progress"`
	Done       []taskResponse `json:"Done"`
}

type messageResponse struct {
	Message string `json:"message"`
}
