package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error)
	listFn   func(ctx context.Context, ownerID string) (*ports.TaskBoard, error)
	getFn    func(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	updateFn func(ctx context.Context, ownerID, taskID string, patch ports.TaskPatch) (*domain.Task, error)
	deleteFn func(ctx context.Context, ownerID, taskID string) error
}

func (s *stubTaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, input)
}

func (s *stubTaskService) ListBoard(ctx context.Context, ownerID string) (*ports.TaskBoard, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubTaskService) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	return s.getFn(ctx, ownerID, taskID)
}

func (s *stubTaskService) Update(ctx context.Context, ownerID, taskID string, patch ports.TaskPatch) (*domain.Task, error) {
	return s.updateFn(ctx, ownerID, taskID, patch)
}

func (s *stubTaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	return s.deleteFn(ctx, ownerID, taskID)
}

// newTaskContext builds a context with the authenticated identity already
// injected, as the Auth middleware would have done.
func newTaskContext(e *echo.Echo, method, path, body, ownerID string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ownerID != "" {
		c.Set(middleware.UserIDKey, ownerID)
	}
	return c, rec
}

func TestTaskHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
			if input.OwnerID != "user-1" {
				t.Fatalf("owner not taken from context: %q", input.OwnerID)
			}
			if input.Title != "Buy milk" {
				t.Fatalf("unexpected title: %q", input.Title)
			}
			return &domain.Task{
				ID: "abc123", UserID: input.OwnerID, Title: input.Title,
				Status: domain.StatusToDo, CreatedAt: now, UpdatedAt: now,
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTaskContext(e, http.MethodPost, "/api/tasks", `{"title":"Buy milk"}`, "user-1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["id"] != "abc123" {
		t.Fatalf("expected normalized id field, got %v", resp["id"])
	}
	if resp["status"] != string(domain.StatusToDo) {
		t.Fatalf("expected default status, got %v", resp["status"])
	}
	if _, hasRawID := resp["_id"]; hasRawID {
		t.Fatalf("raw store identifier leaked in response")
	}
}

func TestTaskHandler_Create_MissingIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewTaskHandler(&stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTaskContext(e, http.MethodPost, "/api/tasks", `{"title":"x"}`, "")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Create_InvalidStatus(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewTaskHandler(&stubTaskService{
		createFn: func(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := newTaskContext(e, http.MethodPost, "/api/tasks",
		`{"title":"x","status":"Archived"}`, "user-1")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestTaskHandler_List_AllBucketsPresent(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubTaskService{
		listFn: func(ctx context.Context, ownerID string) (*ports.TaskBoard, error) {
			return &ports.TaskBoard{
				ToDo:       []*domain.Task{{ID: "abc123", UserID: ownerID, Title: "Buy milk", Status: domain.StatusToDo}},
				InProgress: []*domain.Task{},
				Done:       []*domain.Task{},
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTaskContext(e, http.MethodGet, "/api/tasks", "", "user-1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"To Do", "In Progress", "Done"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("bucket %q missing from response", key)
		}
	}

	var todo []map[string]any
	if err := json.Unmarshal(resp["To Do"], &todo); err != nil {
		t.Fatalf("invalid To Do bucket: %v", err)
	}
	if len(todo) != 1 || todo[0]["id"] != "abc123" {
		t.Fatalf("unexpected To Do bucket: %v", todo)
	}
}

func TestTaskHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewTaskHandler(&stubTaskService{
		getFn: func(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	})

	c, _ := newTaskContext(e, http.MethodGet, "/api/tasks/abc123", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Get(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskHandler_Update_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, ownerID, taskID string, patch ports.TaskPatch) (*domain.Task, error) {
			if ownerID != "user-1" || taskID != "abc123" {
				t.Fatalf("unexpected args: %s %s", ownerID, taskID)
			}
			if patch.Status == nil || *patch.Status != domain.StatusDone {
				t.Fatalf("status patch not forwarded: %+v", patch)
			}
			if patch.Title != nil {
				t.Fatalf("title should be nil in a status-only patch")
			}
			return &domain.Task{ID: taskID, UserID: ownerID, Title: "ship it", Status: domain.StatusDone}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newTaskContext(e, http.MethodPut, "/api/tasks/abc123", `{"status":"Done"}`, "user-1")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["status"] != string(domain.StatusDone) {
		t.Fatalf("expected status Done, got %v", resp["status"])
	}
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	called := false
	handler := NewTaskHandler(&stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			called = true
			if ownerID != "user-1" || taskID != "abc123" {
				t.Fatalf("unexpected args: %s %s", ownerID, taskID)
			}
			return nil
		},
	})

	c, rec := newTaskContext(e, http.MethodDelete, "/api/tasks/abc123", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "task deleted") {
		t.Fatalf("expected confirmation message, got %s", rec.Body.String())
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewTaskHandler(&stubTaskService{
		deleteFn: func(ctx context.Context, ownerID, taskID string) error {
			return domain.ErrTaskNotFound
		},
	})

	c, _ := newTaskContext(e, http.MethodDelete, "/api/tasks/abc123", "", "user-1")
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
